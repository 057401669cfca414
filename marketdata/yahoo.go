package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
)

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements Provider using the Yahoo Finance chart API.
type YahooProvider struct {
	client  *http.Client
	baseURL string
}

// NewYahooProvider creates a Yahoo Finance provider. An empty baseURL falls
// back to the public query host.
func NewYahooProvider(baseURL string, timeout time.Duration) *YahooProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &YahooProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
// Close values are pointers since the API emits nulls for halted sessions
// and holidays.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol string, period Period) (*yahooChart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		p.baseURL, url.PathEscape(symbol), period)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error %s: %s, %w",
			chart.Chart.Error.Code, chart.Chart.Error.Description, ErrNoData)
	}
	return &chart, nil
}

// History fetches daily closing prices for symbol over the given period,
// restricted to business days. An empty upstream result maps to ErrNoData.
func (p *YahooProvider) History(ctx context.Context, symbol string, period Period) (*timeseries.PriceSeries, error) {
	chart, err := p.fetchChart(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}

	quote := result.Indicators.Quote[0]

	type bar struct {
		t     time.Time
		close float64
	}
	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bars on holidays and halted sessions
		}
		bars = append(bars, bar{
			t:     time.Unix(ts, 0).UTC(),
			close: *quote.Close[i],
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].t.Before(bars[j].t) })

	t := make([]time.Time, 0, len(bars))
	close := make([]float64, 0, len(bars))
	for _, b := range bars {
		t = append(t, b.t)
		close = append(close, b.close)
	}

	series, err := timeseries.New(t, close)
	if err != nil {
		return nil, fmt.Errorf("yahoo series: %w", err)
	}
	series = series.BusinessDaysOnly()
	if series.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}
	return series, nil
}

// CompanyName looks up the display name for a symbol from the chart metadata.
// Any miss, including transport failures, falls back to the placeholder so a
// missing name never fails a request.
func (p *YahooProvider) CompanyName(ctx context.Context, symbol string) (string, error) {
	chart, err := p.fetchChart(ctx, symbol, Period1D)
	if err != nil {
		return PlaceholderCompanyName, nil
	}
	if len(chart.Chart.Result) == 0 {
		return PlaceholderCompanyName, nil
	}
	meta := chart.Chart.Result[0].Meta
	if meta.LongName != "" {
		return meta.LongName, nil
	}
	if meta.ShortName != "" {
		return meta.ShortName, nil
	}
	return PlaceholderCompanyName, nil
}
