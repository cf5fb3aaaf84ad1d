package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindInt    Kind = "int64"
	KindFloat  Kind = "float64"
	KindBool   Kind = "bool"
	KindObject Kind = "object"
)

func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

type ColumnKind struct {
	Column string
	Kind   Kind
}

// mesmos marcadores de ausência que um leitor de CSV costuma reconhecer
var nullTokens = map[string]bool{
	"NA": true, "#NA": true, "N/A": true, "n/a": true, "#N/A": true, "#N/A N/A": true,
	"NaN": true, "nan": true, "-NaN": true, "-nan": true, "<NA>": true,
	"1.#QNAN": true, "-1.#QNAN": true, "1.#IND": true, "-1.#IND": true,
	"null": true, "NULL": true, "None": true,
}

// IsNull também trata como ausente qualquer grafia que vire NaN ("NAN", "Nan").
func IsNull(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" || nullTokens[s] {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && math.IsNaN(v)
}

// InferKind tipa a coluna pelas células não nulas. Coluna toda nula é float64,
// e coluna inteira com algum nulo também vira float64.
func InferKind(cells []string) Kind {
	isInt, isFloat, isBool := true, true, true
	seen, hasNull := false, false

	for _, c := range cells {
		if IsNull(c) {
			hasNull = true
			continue
		}
		seen = true
		s := strings.TrimSpace(c)

		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			switch s {
			case "true", "True", "TRUE", "false", "False", "FALSE":
			default:
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return KindObject
		}
	}

	switch {
	case !seen:
		return KindFloat
	case isInt && hasNull:
		return KindFloat
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	}
	return KindObject
}

func (t *Table) Kinds() []ColumnKind {
	out := make([]ColumnKind, len(t.Columns))
	for i, name := range t.Columns {
		cells, _ := t.Column(name)
		out[i] = ColumnKind{Column: name, Kind: InferKind(cells)}
	}
	return out
}

func (t *Table) columnsOf(match func(Kind) bool) []string {
	var cols []string
	for _, ck := range t.Kinds() {
		if match(ck.Kind) {
			cols = append(cols, ck.Column)
		}
	}
	return cols
}

func (t *Table) NumericColumns() []string {
	return t.columnsOf(Kind.Numeric)
}

// ObjectColumns são as colunas de texto livre (categóricas).
func (t *Table) ObjectColumns() []string {
	return t.columnsOf(func(k Kind) bool { return k == KindObject })
}

// Values devolve os valores não nulos de uma coluna numérica.
func (t *Table) Values(col string) ([]float64, error) {
	cells, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	if !InferKind(cells).Numeric() {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, col)
	}
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		if IsNull(c) {
			continue
		}
		v, _ := strconv.ParseFloat(strings.TrimSpace(c), 64)
		out = append(out, v)
	}
	return out, nil
}

// Pairs devolve pares (x, y) das linhas em que as duas colunas têm valor.
func (t *Table) Pairs(xCol, yCol string) ([]float64, []float64, error) {
	xs, err := t.Column(xCol)
	if err != nil {
		return nil, nil, err
	}
	ys, err := t.Column(yCol)
	if err != nil {
		return nil, nil, err
	}
	if !InferKind(xs).Numeric() {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotNumeric, xCol)
	}
	if !InferKind(ys).Numeric() {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotNumeric, yCol)
	}

	var outX, outY []float64
	for i := range xs {
		if IsNull(xs[i]) || IsNull(ys[i]) {
			continue
		}
		x, _ := strconv.ParseFloat(strings.TrimSpace(xs[i]), 64)
		y, _ := strconv.ParseFloat(strings.TrimSpace(ys[i]), 64)
		outX = append(outX, x)
		outY = append(outY, y)
	}
	return outX, outY, nil
}
