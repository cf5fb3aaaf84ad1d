package dataset

import (
	"sort"
	"strings"
)

type ValueCount struct {
	Value string
	Count int
}

// ValueCounts conta os valores não nulos, do mais frequente para o menos;
// empates ficam na ordem em que o valor apareceu primeiro.
func (t *Table) ValueCounts(col string) ([]ValueCount, error) {
	cells, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []ValueCount
	for _, c := range cells {
		if IsNull(c) {
			continue
		}
		v := strings.TrimSpace(c)
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

func (t *Table) NUnique(col string) (int, error) {
	counts, err := t.ValueCounts(col)
	if err != nil {
		return 0, err
	}
	return len(counts), nil
}

type NullCount struct {
	Column string
	Nulls  int
}

func (t *Table) NullCounts() []NullCount {
	out := make([]NullCount, len(t.Columns))
	for i, name := range t.Columns {
		out[i].Column = name
		for _, row := range t.Rows {
			if IsNull(row[i]) {
				out[i].Nulls++
			}
		}
	}
	return out
}

// CrossTab conta as combinações (x, hue) para o gráfico de barras agrupado.
// Counts[h][x] corresponde a Hues[h] e Categories[x].
type CrossTab struct {
	X          string
	Hue        string
	Categories []string
	Hues       []string
	Counts     [][]int
}

func (t *Table) CrossCounts(xCol, hueCol string) (*CrossTab, error) {
	xs, err := t.Column(xCol)
	if err != nil {
		return nil, err
	}
	hs, err := t.Column(hueCol)
	if err != nil {
		return nil, err
	}

	ct := &CrossTab{X: xCol, Hue: hueCol}
	xIdx := make(map[string]int)
	hIdx := make(map[string]int)
	type key struct{ h, x int }
	tally := make(map[key]int)

	for i := range xs {
		if IsNull(xs[i]) || IsNull(hs[i]) {
			continue
		}
		x, h := strings.TrimSpace(xs[i]), strings.TrimSpace(hs[i])
		xi, ok := xIdx[x]
		if !ok {
			xi = len(ct.Categories)
			xIdx[x] = xi
			ct.Categories = append(ct.Categories, x)
		}
		hi, ok := hIdx[h]
		if !ok {
			hi = len(ct.Hues)
			hIdx[h] = hi
			ct.Hues = append(ct.Hues, h)
		}
		tally[key{hi, xi}]++
	}

	ct.Counts = make([][]int, len(ct.Hues))
	for hi := range ct.Hues {
		ct.Counts[hi] = make([]int, len(ct.Categories))
		for xi := range ct.Categories {
			ct.Counts[hi][xi] = tally[key{hi, xi}]
		}
	}
	return ct, nil
}
