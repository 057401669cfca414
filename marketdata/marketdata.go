// Package marketdata retrieves historical closing prices and company display
// names from an external market data provider.
package marketdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
)

var (
	ErrNoData        = errors.New("no price data for symbol")
	ErrUnknownPeriod = errors.New("unknown period")
)

// PlaceholderCompanyName is shown whenever the provider has no display name
// for a symbol. A missing name is never surfaced as a failure.
const PlaceholderCompanyName = "Company Name Not Found"

// Period is the lookback window for a history request.
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
)

// Periods returns the supported lookback windows in display order.
func Periods() []Period {
	return []Period{Period1D, Period5D, Period1Mo, Period3Mo, Period6Mo, Period1Y}
}

// ParsePeriod validates a raw period string.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods() {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%q, %w", s, ErrUnknownPeriod)
}

// DefaultSymbols is the fixed ticker list offered by the dashboard.
var DefaultSymbols = []string{
	"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NFLX", "MU", "INTC",
	"PYPL", "F", "WMT", "KO", "SNAP", "SHOP", "CSCO", "UBER", "SBUX", "TWTR",
	"ADBE", "NKE", "MCD", "NOK", "PEP", "BB", "ORCL", "AA", "SONY",
}

// Provider fetches historical prices and company names. Implementations
// return series restricted to business days in ascending date order.
type Provider interface {
	History(ctx context.Context, symbol string, period Period) (*timeseries.PriceSeries, error)
	CompanyName(ctx context.Context, symbol string) (string, error)
}
