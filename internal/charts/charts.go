// Package charts desenha os gráficos do dashboard como páginas HTML do go-echarts.
package charts

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"listinglab/internal/dataset"
)

const (
	fullWidth  = "900px"
	fullHeight = "480px"
	cellSize   = "320px"
)

func initOpts(title, width, height string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Width:     width,
		Height:    height,
	})
}

// ValueCountsBar é o gráfico de barras de uma coluna categórica.
func ValueCountsBar(w io.Writer, t *dataset.Table, col string) error {
	counts, err := t.ValueCounts(col)
	if err != nil {
		return err
	}

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Value
		data[i] = opts.BarData{Value: c.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(col, fullWidth, fullHeight),
		charts.WithTitleOpts(opts.Title{Title: col + " Value Counts"}),
		charts.WithXAxisOpts(opts.XAxis{Name: col}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar.Render(w)
}

// GroupedBar empilha, para cada categoria de x, as contagens por valor de hue.
func GroupedBar(w io.Writer, t *dataset.Table, xCol, hueCol string) error {
	ct, err := t.CrossCounts(xCol, hueCol)
	if err != nil {
		return err
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(xCol+" vs "+hueCol, fullWidth, fullHeight),
		charts.WithTitleOpts(opts.Title{Title: xCol + " vs " + hueCol}),
		charts.WithXAxisOpts(opts.XAxis{Name: xCol}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(ct.Categories)
	for h, hue := range ct.Hues {
		data := make([]opts.BarData, len(ct.Categories))
		for x := range ct.Categories {
			data[x] = opts.BarData{Value: ct.Counts[h][x]}
		}
		bar.AddSeries(hue, data, charts.WithBarChartOpts(opts.BarChart{Stack: hueCol}))
	}
	return bar.Render(w)
}

func histogramBar(title string, values []float64, width, height string) *charts.Bar {
	bins := dataset.Histogram(values, 0)
	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = fmt.Sprintf("%.4g–%.4g", b.Lower, b.Upper)
		data[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title, width, height),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	bar.SetXAxis(labels).AddSeries("count", data, charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}))
	return bar
}

func Histogram(w io.Writer, t *dataset.Table, col string) error {
	values, err := t.Values(col)
	if err != nil {
		return err
	}
	return histogramBar(col+" Distribution", values, fullWidth, fullHeight).Render(w)
}

// CorrelationHeatmap mostra a matriz de Pearson com o valor anotado em cada célula.
func CorrelationHeatmap(w io.Writer, t *dataset.Table) error {
	m := t.Correlation()
	if len(m.Columns) == 0 {
		return fmt.Errorf("%w: no numeric columns to correlate", dataset.ErrNotNumeric)
	}

	var data []opts.HeatMapData
	for i := range m.Columns {
		for j := range m.Columns {
			var v interface{} = "-"
			if r := m.Values[i][j]; !math.IsNaN(r) {
				v = math.Round(r*100) / 100
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		initOpts("Correlation Heatmap", fullWidth, fullHeight),
		charts.WithTitleOpts(opts.Title{Title: "Correlation Heatmap"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: m.Columns}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: m.Columns}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:     -1,
			Max:     1,
			InRange: &opts.VisualMapInRange{Color: []string{"#313695", "#f7f7f7", "#a50026"}},
		}),
	)
	hm.SetXAxis(m.Columns).AddSeries("correlation", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return hm.Render(w)
}

func scatterChart(title, xCol, yCol string, xs, ys []float64, width, height string) *charts.Scatter {
	data := make([]opts.ScatterData, len(xs))
	for i := range xs {
		data[i] = opts.ScatterData{Value: []interface{}{xs[i], ys[i]}}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		initOpts(title, width, height),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: xCol}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: yCol}),
	)
	sc.AddSeries(yCol, data)
	return sc
}

func Scatter(w io.Writer, t *dataset.Table, xCol, yCol string) error {
	xs, ys, err := t.Pairs(xCol, yCol)
	if err != nil {
		return err
	}
	return scatterChart(xCol+" vs "+yCol, xCol, yCol, xs, ys, fullWidth, fullHeight).Render(w)
}

// PairPlot desenha uma grade com dispersão para cada par de colunas e
// histograma na diagonal.
func PairPlot(w io.Writer, t *dataset.Table, cols []string) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: no columns selected for the pairplot", dataset.ErrUnknownColumn)
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	for _, row := range cols {
		for _, col := range cols {
			if row == col {
				values, err := t.Values(col)
				if err != nil {
					return err
				}
				page.AddCharts(histogramBar(col, values, cellSize, cellSize))
				continue
			}
			xs, ys, err := t.Pairs(col, row)
			if err != nil {
				return err
			}
			page.AddCharts(scatterChart(col+" vs "+row, col, row, xs, ys, cellSize, cellSize))
		}
	}
	return page.Render(w)
}
