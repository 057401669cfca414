package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) // a Monday

	testData := map[string]struct {
		t   []time.Time
		c   []float64
		err error
	}{
		"valid": {
			t: []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)},
			c: []float64{10, 12, 14},
		},
		"empty": {
			t: nil,
			c: nil,
		},
		"length mismatch": {
			t:   []time.Time{start},
			c:   []float64{10, 12},
			err: ErrSeriesLenMismatch,
		},
		"duplicate date": {
			t:   []time.Time{start, start},
			c:   []float64{10, 12},
			err: ErrNonMonotonic,
		},
		"decreasing date": {
			t:   []time.Time{start.AddDate(0, 0, 1), start},
			c:   []float64{10, 12},
			err: ErrNonMonotonic,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := New(td.t, td.c)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(td.t), s.Len())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	closes := []float64{10, 12}

	s, err := New([]time.Time{start, start.AddDate(0, 0, 1)}, closes)
	require.NoError(t, err)

	closes[0] = 99
	assert.Equal(t, 10.0, s.Close[0])
}

func TestBusinessDaysOnly(t *testing.T) {
	friday := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	saturday := friday.AddDate(0, 0, 1)
	sunday := friday.AddDate(0, 0, 2)
	monday := friday.AddDate(0, 0, 3)

	s, err := New(
		[]time.Time{friday, saturday, sunday, monday},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)

	filtered := s.BusinessDaysOnly()
	assert.Equal(t, []time.Time{friday, monday}, filtered.T)
	assert.Equal(t, []float64{1, 4}, filtered.Close)
}

func TestConcat(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	a, err := New([]time.Time{start, start.AddDate(0, 0, 1)}, []float64{10, 12})
	require.NoError(t, err)

	t.Run("appends after last date", func(t *testing.T) {
		b, err := New([]time.Time{start.AddDate(0, 0, 2)}, []float64{14})
		require.NoError(t, err)

		merged, err := a.Concat(b)
		require.NoError(t, err)
		assert.Equal(t, 3, merged.Len())
		assert.Equal(t, 14.0, merged.LastClose())
	})

	t.Run("rejects overlap", func(t *testing.T) {
		b, err := New([]time.Time{start.AddDate(0, 0, 1)}, []float64{14})
		require.NoError(t, err)

		_, err = a.Concat(b)
		assert.ErrorIs(t, err, ErrSeriesOverlap)
	})

	t.Run("empty other", func(t *testing.T) {
		merged, err := a.Concat(Empty())
		require.NoError(t, err)
		assert.Equal(t, a.T, merged.T)
	})

	t.Run("empty receiver", func(t *testing.T) {
		merged, err := Empty().Concat(a)
		require.NoError(t, err)
		assert.Equal(t, a.T, merged.T)
	})
}

func TestEmptySeries(t *testing.T) {
	s := Empty()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0.0, s.LastClose())
	assert.True(t, s.EndTime().IsZero())
	assert.True(t, s.StartTime().IsZero())
}

func TestIsBusinessDay(t *testing.T) {
	// 2024-04-01 is a Monday
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	expected := []bool{true, true, true, true, true, false, false}
	for i, want := range expected {
		assert.Equalf(t, want, IsBusinessDay(day.AddDate(0, 0, i)), "offset %d", i)
	}
}

func TestNextBusinessDay(t *testing.T) {
	testData := map[string]struct {
		in   time.Time
		next time.Time
	}{
		"midweek": {
			in:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), // Tuesday
			next: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
		},
		"friday rolls to monday": {
			in:   time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
			next: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
		},
		"saturday rolls to monday": {
			in:   time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC),
			next: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.next, NextBusinessDay(td.in))
		})
	}
}
