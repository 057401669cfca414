// Package stockviewer assembles the stock price dashboard view: it fetches a
// historical closing price series, appends a naive linear trend projection,
// and renders the combined series as a line or bar chart with company and
// price labels.
package stockviewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/marketdata"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/projection"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
)

var ErrNoProvider = errors.New("no market data provider")

const (
	DefaultSymbol = "AAPL"
	DefaultPeriod = marketdata.Period1Mo
)

// Viewer produces dashboard output for user interaction events. It holds no
// per-user state; that lives in Session.
type Viewer struct {
	opt      *Options
	provider marketdata.Provider
}

// New creates a Viewer using the provided options. If no options are provided
// a default is used.
func New(provider marketdata.Provider, opt *Options) (*Viewer, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.Horizon <= 0 {
		opt.Horizon = DefaultHorizon
	}
	return &Viewer{
		opt:      opt,
		provider: provider,
	}, nil
}

// NewSession starts an unrefreshed dashboard session.
func (v *Viewer) NewSession() *Session {
	return &Session{viewer: v}
}

// BackgroundColor returns the process-wide page background color.
func (v *Viewer) BackgroundColor() string {
	return v.opt.BackgroundColor
}

// render performs one synchronous fetch-project-draw pass for a normalized
// event. Provider failures collapse into the no-data output rather than
// propagate.
func (v *Viewer) render(ctx context.Context, ev Event) *Output {
	series, err := v.provider.History(ctx, ev.Symbol, ev.Period)
	if err != nil || series.IsEmpty() {
		return v.noDataOutput()
	}

	name, err := v.provider.CompanyName(ctx, ev.Symbol)
	if err != nil || name == "" {
		name = marketdata.PlaceholderCompanyName
	}

	combined := series
	if future, err := projection.Project(series, v.opt.Horizon); err == nil {
		if merged, err := series.Concat(future); err == nil {
			combined = merged
		}
	}

	title := fmt.Sprintf("Stock Prices for %s (%s period)", ev.Symbol, ev.Period)
	seriesName := fmt.Sprintf("%s Stock Price", ev.Symbol)

	var chart Chart
	switch ev.Chart {
	case ChartBar:
		chart = BarPrices(title, seriesName, v.opt.BackgroundColor, combined)
	default:
		chart = LinePrices(title, seriesName, v.opt.BackgroundColor, combined)
	}

	return &Output{
		State:       StateLoaded,
		Chart:       chart,
		CompanyLine: fmt.Sprintf("Company: %s", name),
		PriceLine:   priceLabel(ev, series),
	}
}

func (v *Viewer) noDataOutput() *Output {
	return &Output{
		State:       StateLoaded,
		NoData:      true,
		Chart:       EmptyChart(v.opt.BackgroundColor),
		CompanyLine: "Error: No data available",
		PriceLine:   "Price: Not Available",
	}
}

func (v *Viewer) idleOutput() *Output {
	return &Output{
		State:       StateIdle,
		Chart:       EmptyChart(v.opt.BackgroundColor),
		CompanyLine: "Please click 'Update' to fetch data",
		PriceLine:   "Price: Not Available",
	}
}

// priceLabel shows the last historical close by default and the hovered
// point's value when a hover position is present. A hover over a projected
// point is indistinguishable from a historical one.
func priceLabel(ev Event, series *timeseries.PriceSeries) string {
	if ev.Hover != nil {
		return fmt.Sprintf("Price on %s: $%.2f", ev.Hover.Date, ev.Hover.Price)
	}
	return fmt.Sprintf("Last Price for %s: $%.2f", ev.Symbol, series.LastClose())
}
