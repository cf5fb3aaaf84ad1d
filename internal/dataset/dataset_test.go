package dataset

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `city,category,price,rating,in_stock
Delhi,phone,100,4.5,true
Mumbai,laptop,250,,false
Delhi,phone,150,3.9,true
Pune,tablet,,4.1,true
Delhi,laptop,300,4.8,NA
`

func loadSample(t *testing.T) *Table {
	t.Helper()
	tbl, err := Load("sample.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return tbl
}

func TestLoadCSVShapeMatchesTable(t *testing.T) {
	tbl := loadSample(t)
	rows, cols := tbl.Shape()
	require.Equal(t, 5, rows)
	require.Equal(t, 5, cols)
	require.Equal(t, len(tbl.Rows), rows)
	require.Equal(t, len(tbl.Columns), cols)

	s := Summarize(tbl)
	require.Equal(t, rows, s.Rows)
	require.Equal(t, cols, s.Columns)
}

func TestLoadXLSXShapeMatchesTable(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]interface{}{
		{"name", "qty", "price"},
		{"pen", 3, 1.5},
		{"book", 1, 12.25},
		{"bag"},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := Load("stock.xlsx", &buf)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []string{"bag", "", ""}, tbl.Rows[2])
	require.ElementsMatch(t, []string{"price", "qty"}, tbl.NumericColumns())
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load("notes.txt", strings.NewReader("a,b"))
	require.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load("empty.csv", strings.NewReader(""))
	require.True(t, errors.Is(err, ErrEmptyFile))
}

func TestLoadNormalizesHeader(t *testing.T) {
	tbl, err := Load("dups.csv", strings.NewReader("a,,a,a\n1,2,3,4\n5,6\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "Unnamed: 1", "a.1", "a.2"}, tbl.Columns)
	require.Equal(t, []string{"5", "6", "", ""}, tbl.Rows[1])
}

func TestKinds(t *testing.T) {
	tbl := loadSample(t)
	expected := []ColumnKind{
		{Column: "city", Kind: KindObject},
		{Column: "category", Kind: KindObject},
		{Column: "price", Kind: KindFloat},
		{Column: "rating", Kind: KindFloat},
		{Column: "in_stock", Kind: KindBool},
	}
	if diff := cmp.Diff(expected, tbl.Kinds()); diff != "" {
		t.Fatalf("unexpected kinds (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"price", "rating"}, tbl.NumericColumns())
	require.Equal(t, []string{"city", "category"}, tbl.ObjectColumns())
	require.Equal(t, KindFloat, InferKind([]string{"", "NA"}))
	require.Equal(t, KindInt, InferKind([]string{"1", "2", "3"}))
	require.Equal(t, KindFloat, InferKind([]string{"1", "", "3"}))
}

func TestNaNSpellingsCountAsNull(t *testing.T) {
	for _, cell := range []string{"NAN", "Nan", "-nan", "#NA", "#N/A N/A", "1.#QNAN", "-1.#QNAN", "1.#IND", "-1.#IND"} {
		require.True(t, IsNull(cell), cell)
	}
	require.False(t, IsNull("inf"))
	require.False(t, IsNull("0"))

	tbl, err := Load("nan.csv", strings.NewReader("v\n1\n2\nNAN\n"))
	require.NoError(t, err)
	require.Equal(t, []NullCount{{"v", 1}}, tbl.NullCounts())

	stats := tbl.Describe()
	require.Len(t, stats, 1)
	require.Equal(t, 2, stats[0].Count)
	require.InDelta(t, 1.5, stats[0].Mean, 1e-12)
	require.InDelta(t, 1.25, stats[0].Q25, 1e-12)
	require.InDelta(t, 1.5, stats[0].Median, 1e-12)
}

func TestInfiniteValuesStayOutOfBins(t *testing.T) {
	tbl, err := Load("inf.csv", strings.NewReader("v\n1\n2\ninf\n-Infinity\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"v"}, tbl.NumericColumns())

	values, err := tbl.Values("v")
	require.NoError(t, err)
	require.Len(t, values, 4)

	bins := Histogram(values, 0)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, 2, total)
	require.Equal(t, 1.0, bins[0].Lower)
	require.Equal(t, 2.0, bins[len(bins)-1].Upper)

	require.Nil(t, Histogram([]float64{math.Inf(1), math.NaN()}, 0))

	out := tbl.Outliers()
	require.Len(t, out, 1)
	require.Equal(t, 2, out[0].Count)

	stats := tbl.Describe()
	require.True(t, math.IsInf(stats[0].Max, 1))
	require.True(t, math.IsInf(stats[0].Min, -1))
}

func TestDescribe(t *testing.T) {
	tbl := loadSample(t)
	stats := tbl.Describe()
	require.Len(t, stats, 2)

	price := stats[0]
	require.Equal(t, "price", price.Column)
	require.Equal(t, 4, price.Count)
	require.InDelta(t, 200, price.Mean, 1e-9)
	require.InDelta(t, 91.2870929175277, price.Std, 1e-9)
	require.Equal(t, 100.0, price.Min)
	require.InDelta(t, 137.5, price.Q25, 1e-9)
	require.InDelta(t, 200, price.Median, 1e-9)
	require.InDelta(t, 262.5, price.Q75, 1e-9)
	require.Equal(t, 300.0, price.Max)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	require.InDelta(t, 1.75, Quantile(sorted, 0.25), 1e-12)
	require.InDelta(t, 2.5, Quantile(sorted, 0.5), 1e-12)
	require.InDelta(t, 4, Quantile(sorted, 1), 1e-12)
	require.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestValueCountsAndNulls(t *testing.T) {
	tbl := loadSample(t)

	counts, err := tbl.ValueCounts("city")
	require.NoError(t, err)
	require.Equal(t, []ValueCount{{"Delhi", 3}, {"Mumbai", 1}, {"Pune", 1}}, counts)

	n, err := tbl.NUnique("category")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = tbl.ValueCounts("missing")
	require.True(t, errors.Is(err, ErrUnknownColumn))

	require.Equal(t, []NullCount{
		{"city", 0}, {"category", 0}, {"price", 1}, {"rating", 1}, {"in_stock", 1},
	}, tbl.NullCounts())
}

func TestCorrelation(t *testing.T) {
	tbl, err := Load("lin.csv", strings.NewReader("x,y,z,c\n1,2,5,7\n2,4,4,7\n3,6,3,7\n4,8,,7\n"))
	require.NoError(t, err)

	m := tbl.Correlation()
	require.Equal(t, []string{"x", "y", "z", "c"}, m.Columns)
	require.InDelta(t, 1, m.Values[0][1], 1e-12)
	require.InDelta(t, -1, m.Values[0][2], 1e-12)
	require.InDelta(t, 1, m.Values[2][2], 1e-12)
	require.True(t, math.IsNaN(m.Values[0][3]))
	require.Equal(t, m.Values[1][2], m.Values[2][1])
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, 5)
	require.Len(t, bins, 5)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	require.Equal(t, 10, total)
	require.Equal(t, 2, bins[0].Count)
	require.Equal(t, 2, bins[4].Count)
	require.Equal(t, 10.0, bins[4].Upper)

	single := Histogram([]float64{3, 3, 3}, 0)
	require.Equal(t, []Bin{{Lower: 3, Upper: 3, Count: 3}}, single)
	require.Nil(t, Histogram(nil, 0))
}

func TestCrossCounts(t *testing.T) {
	tbl := loadSample(t)
	ct, err := tbl.CrossCounts("category", "city")
	require.NoError(t, err)
	require.Equal(t, []string{"phone", "laptop", "tablet"}, ct.Categories)
	require.Equal(t, []string{"Delhi", "Mumbai", "Pune"}, ct.Hues)
	require.Equal(t, [][]int{{2, 1, 0}, {0, 1, 0}, {0, 0, 1}}, ct.Counts)
}

func TestOutliers(t *testing.T) {
	tbl, err := Load("o.csv", strings.NewReader("v\n10\n11\n12\n13\n12\n11\n100\n"))
	require.NoError(t, err)
	out := tbl.Outliers()
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].Count)
}

func TestSummarizeObjectOnlyTable(t *testing.T) {
	tbl, err := Load("o.csv", strings.NewReader("color\nred\nblue\nred\n"))
	require.NoError(t, err)
	s := Summarize(tbl)
	require.Empty(t, s.Describe)
	require.Equal(t, []ObjectStats{{Column: "color", Count: 3, Unique: 2, Top: "red", Freq: 2}}, s.DescribeObject)
	require.Len(t, s.Objects, 1)
	require.Equal(t, 0, s.TotalNulls())
}
