package stockviewer

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
)

// ChartKind selects how the combined series is drawn.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// ChartKinds returns the supported chart kinds in display order.
func ChartKinds() []ChartKind {
	return []ChartKind{ChartLine, ChartBar}
}

// Chart is a rendered echarts widget.
type Chart interface {
	Render(w io.Writer) error
}

// LinePrices generates an echart line chart for the combined historical and
// projected series. Projected points are drawn as part of the same series
// without a visual boundary.
func LinePrices(title, seriesName, bgColor string, s *timeseries.PriceSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(chartGlobalOpts(title, bgColor)...)

	lineData := make([]opts.LineData, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		lineData = append(lineData, opts.LineData{Value: s.Close[i]})
	}

	line.SetXAxis(chartDates(s.T)).
		AddSeries(seriesName, lineData)
	return line
}

// BarPrices generates the bar chart variant of LinePrices.
func BarPrices(title, seriesName, bgColor string, s *timeseries.PriceSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(chartGlobalOpts(title, bgColor)...)

	barData := make([]opts.BarData, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		barData = append(barData, opts.BarData{Value: s.Close[i]})
	}

	bar.SetXAxis(chartDates(s.T)).
		AddSeries(seriesName, barData)
	return bar
}

// EmptyChart returns a chart with no series for the idle and no-data states.
func EmptyChart(bgColor string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(chartGlobalOpts("", bgColor)...)
	line.SetXAxis([]string{})
	return line
}

func chartGlobalOpts(title, bgColor string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithInitializationOpts(
			opts.Initialization{
				BackgroundColor: bgColor,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: "Date",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: "Price ($)",
			},
		),
		charts.WithTooltipOpts(
			opts.Tooltip{
				Trigger: "axis",
			},
		),
	}
}

func chartDates(t []time.Time) []string {
	dates := make([]string, 0, len(t))
	for _, tPnt := range t {
		dates = append(dates, tPnt.Format(time.DateOnly))
	}
	return dates
}
