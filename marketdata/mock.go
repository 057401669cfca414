package marketdata

import (
	"context"
	"time"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Series     *timeseries.PriceSeries
	Name       string
	HistoryErr error
	NameErr    error
}

func (m *MockProvider) History(_ context.Context, _ string, _ Period) (*timeseries.PriceSeries, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if m.Series == nil || m.Series.IsEmpty() {
		return nil, ErrNoData
	}
	return m.Series.Copy(), nil
}

func (m *MockProvider) CompanyName(_ context.Context, _ string) (string, error) {
	if m.NameErr != nil {
		return "", m.NameErr
	}
	if m.Name == "" {
		return PlaceholderCompanyName, nil
	}
	return m.Name, nil
}

// GenerateSeries produces count business-day closes walking back from end,
// moving linearly from base by step per day.
func GenerateSeries(end time.Time, count int, base, step float64) *timeseries.PriceSeries {
	t := make([]time.Time, 0, count)
	day := end
	for i := 0; i < count; i++ {
		t = append(t, day)
		day = prevBusinessDay(day)
	}
	// walked backwards, reverse into ascending order
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}

	close := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		close = append(close, base+step*float64(i))
	}
	s, _ := timeseries.New(t, close)
	return s
}

func prevBusinessDay(t time.Time) time.Time {
	prev := t.AddDate(0, 0, -1)
	for !timeseries.IsBusinessDay(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}
