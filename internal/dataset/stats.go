package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NumericStats corresponde a uma coluna da tabela de estatísticas descritivas.
type NumericStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe calcula as estatísticas das colunas numéricas. Desvio padrão amostral.
func (t *Table) Describe() []NumericStats {
	var out []NumericStats
	for _, col := range t.NumericColumns() {
		values, _ := t.Values(col)
		out = append(out, describeValues(col, values))
	}
	return out
}

func describeValues(col string, values []float64) NumericStats {
	s := NumericStats{Column: col, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		s.Std = math.NaN()
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = Quantile(sorted, 0.25)
	s.Median = Quantile(sorted, 0.5)
	s.Q75 = Quantile(sorted, 0.75)
	return s
}

// Quantile interpola linearmente entre as estatísticas de ordem (x deve estar ordenado).
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	frac := h - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ObjectStats é a descrição usada quando a tabela não tem colunas numéricas.
type ObjectStats struct {
	Column string
	Count  int
	Unique int
	Top    string
	Freq   int
}

func (t *Table) DescribeObjects() []ObjectStats {
	var out []ObjectStats
	for _, col := range t.ObjectColumns() {
		counts, _ := t.ValueCounts(col)
		s := ObjectStats{Column: col, Unique: len(counts)}
		for _, c := range counts {
			s.Count += c.Count
		}
		if len(counts) > 0 {
			s.Top, s.Freq = counts[0].Value, counts[0].Count
		}
		out = append(out, s)
	}
	return out
}

type Matrix struct {
	Columns []string
	Values  [][]float64
}

// Correlation é a matriz de Pearson entre colunas numéricas, usando só as
// linhas em que o par tem valor. NaN quando não há variação ou pares suficientes.
func (t *Table) Correlation() *Matrix {
	cols := t.NumericColumns()
	m := &Matrix{Columns: cols, Values: make([][]float64, len(cols))}
	for i := range cols {
		m.Values[i] = make([]float64, len(cols))
	}

	for i := range cols {
		for j := i; j < len(cols); j++ {
			xs, ys, _ := t.Pairs(cols[i], cols[j])
			r := math.NaN()
			if len(xs) >= 2 {
				r = stat.Correlation(xs, ys, nil)
			}
			m.Values[i][j], m.Values[j][i] = r, r
		}
	}
	return m
}

type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram divide [min, max] em faixas de mesma largura; a última faixa inclui o máximo.
// bins <= 0 usa a regra de Sturges.
// Valores infinitos ficam fora das faixas.
func Histogram(values []float64, bins int) []Bin {
	values = finite(values)
	if len(values) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = int(math.Ceil(math.Log2(float64(len(values))))) + 1
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

type OutlierReport struct {
	Column string
	Lower  float64
	Upper  float64
	Count  int
}

// Outliers conta, por coluna numérica, os valores fora de [Q1-1.5·IQR, Q3+1.5·IQR].
func (t *Table) Outliers() []OutlierReport {
	var out []OutlierReport
	for _, col := range t.NumericColumns() {
		values, _ := t.Values(col)
		// as cercas usam só valores finitos; infinitos contam como outliers
		sorted := finite(values)
		if len(sorted) == 0 {
			continue
		}
		sort.Float64s(sorted)

		q1, q3 := Quantile(sorted, 0.25), Quantile(sorted, 0.75)
		iqr := q3 - q1
		r := OutlierReport{Column: col, Lower: q1 - 1.5*iqr, Upper: q3 + 1.5*iqr}
		for _, v := range values {
			if v < r.Lower || v > r.Upper {
				r.Count++
			}
		}
		out = append(out, r)
	}
	return out
}
