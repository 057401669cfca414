// Package timeseries provides the price series value type shared between the
// market data layer and the projection layer.
package timeseries

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

var (
	ErrNonMonotonic      = errors.New("price series dates are not strictly increasing")
	ErrSeriesLenMismatch = errors.New("date feature has a different length than closing prices")
	ErrSeriesOverlap     = errors.New("series to concatenate starts on or before the last date")
)

// workCal is a plain Mon-Fri business calendar with no holiday set. The
// upstream provider already omits exchange holidays so only weekends need
// filtering here.
var workCal = cal.NewBusinessCalendar()

// PriceSeries represents an ordered sequence of (date, closing price) pairs,
// strictly increasing by date. The zero-length series is valid and stands for
// the provider's "no data" result.
type PriceSeries struct {
	T     []time.Time
	Close []float64
}

// New returns a PriceSeries after validating that dates and closes have the
// same length and that dates are strictly increasing.
func New(t []time.Time, close []float64) (*PriceSeries, error) {
	if len(t) != len(close) {
		return nil, fmt.Errorf(
			"dates have length of %d, but closes have a length of %d, %w",
			len(t), len(close), ErrSeriesLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	cSeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(cSeries, close)
	return &PriceSeries{
		T:     tSeries,
		Close: cSeries,
	}, nil
}

// Empty returns a valid zero-length series.
func Empty() *PriceSeries {
	return &PriceSeries{}
}

func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.T)
}

func (s *PriceSeries) IsEmpty() bool {
	return s.Len() == 0
}

func (s *PriceSeries) StartTime() time.Time {
	var startTime time.Time
	if s.Len() < 1 {
		return startTime
	}
	return s.T[0]
}

func (s *PriceSeries) EndTime() time.Time {
	var lastTime time.Time
	if s.Len() < 1 {
		return lastTime
	}
	return s.T[len(s.T)-1]
}

// LastClose returns the most recent closing price or zero on an empty series.
func (s *PriceSeries) LastClose() float64 {
	if s.Len() < 1 {
		return 0
	}
	return s.Close[len(s.Close)-1]
}

func (s *PriceSeries) Copy() *PriceSeries {
	tSeries := make([]time.Time, s.Len())
	cSeries := make([]float64, s.Len())
	copy(tSeries, s.T)
	copy(cSeries, s.Close)
	return &PriceSeries{
		T:     tSeries,
		Close: cSeries,
	}
}

// Concat returns a new series with other appended after s. The other series
// must start strictly after the last date of s.
func (s *PriceSeries) Concat(other *PriceSeries) (*PriceSeries, error) {
	if other.IsEmpty() {
		return s.Copy(), nil
	}
	if !s.IsEmpty() && !other.StartTime().After(s.EndTime()) {
		return nil, fmt.Errorf(
			"last date %s, next start %s, %w",
			s.EndTime().Format(time.DateOnly), other.StartTime().Format(time.DateOnly), ErrSeriesOverlap,
		)
	}
	merged := s.Copy()
	merged.T = append(merged.T, other.T...)
	merged.Close = append(merged.Close, other.Close...)
	return merged, nil
}

// BusinessDaysOnly returns a new series restricted to Monday through Friday.
func (s *PriceSeries) BusinessDaysOnly() *PriceSeries {
	tSeries := make([]time.Time, 0, s.Len())
	cSeries := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if !IsBusinessDay(s.T[i]) {
			continue
		}
		tSeries = append(tSeries, s.T[i])
		cSeries = append(cSeries, s.Close[i])
	}
	return &PriceSeries{
		T:     tSeries,
		Close: cSeries,
	}
}

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	return workCal.IsWorkday(t)
}

// NextBusinessDay returns the first weekday strictly after t.
func NextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !IsBusinessDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
