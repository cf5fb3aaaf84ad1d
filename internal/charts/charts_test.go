package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"listinglab/internal/dataset"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Load("s.csv", strings.NewReader("brand,kind,price,rating\nAcme,phone,100,4.1\nZeta,phone,200,3.5\nAcme,tv,900,\nAcme,tv,1200,4.9\n"))
	require.NoError(t, err)
	return tbl
}

func TestRenderers(t *testing.T) {
	tbl := sampleTable(t)

	testCases := []struct {
		name   string
		render func(*bytes.Buffer) error
		want   string
	}{
		{"bar", func(b *bytes.Buffer) error { return ValueCountsBar(b, tbl, "brand") }, "brand Value Counts"},
		{"grouped", func(b *bytes.Buffer) error { return GroupedBar(b, tbl, "kind", "brand") }, "kind vs brand"},
		{"hist", func(b *bytes.Buffer) error { return Histogram(b, tbl, "price") }, "price Distribution"},
		{"heatmap", func(b *bytes.Buffer) error { return CorrelationHeatmap(b, tbl) }, "Correlation Heatmap"},
		{"scatter", func(b *bytes.Buffer) error { return Scatter(b, tbl, "price", "rating") }, "price vs rating"},
		{"pair", func(b *bytes.Buffer) error { return PairPlot(b, tbl, []string{"price", "rating"}) }, "rating vs price"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.render(&buf))
			require.Contains(t, buf.String(), tc.want)
		})
	}
}

func TestRenderersRejectBadColumns(t *testing.T) {
	tbl := sampleTable(t)
	var buf bytes.Buffer

	require.True(t, errors.Is(ValueCountsBar(&buf, tbl, "nope"), dataset.ErrUnknownColumn))
	require.True(t, errors.Is(Histogram(&buf, tbl, "brand"), dataset.ErrNotNumeric))
	require.True(t, errors.Is(Scatter(&buf, tbl, "price", "kind"), dataset.ErrNotNumeric))
	require.Error(t, PairPlot(&buf, tbl, nil))
}
