package projection

import (
	"testing"
	"time"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	testData := map[string]struct {
		y         []float64
		slope     float64
		intercept float64
		err       error
	}{
		"exact line": {
			y:         []float64{10, 12, 14},
			slope:     2,
			intercept: 10,
		},
		"flat": {
			y:         []float64{5, 5, 5, 5},
			slope:     0,
			intercept: 5,
		},
		"negative trend": {
			y:         []float64{9, 6, 3},
			slope:     -3,
			intercept: 9,
		},
		"single point degenerates to constant": {
			y:         []float64{42},
			slope:     0,
			intercept: 42,
		},
		"two points": {
			y:         []float64{1, 2},
			slope:     1,
			intercept: 1,
		},
		"no samples": {
			y:   nil,
			err: ErrNoSamples,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			line, err := Fit(td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.slope, line.Slope, 1e-9)
			assert.InDelta(t, td.intercept, line.Intercept, 1e-9)
		})
	}
}

func TestFitNoisy(t *testing.T) {
	// least squares over a noisy but symmetric spread keeps the midline
	line, err := Fit([]float64{10, 14, 12, 16, 14})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, line.Slope, 1e-9)
	assert.InDelta(t, 11.2, line.Intercept, 1e-9)
}

func TestProjectLinearValues(t *testing.T) {
	// Mon, Tue, Wed
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	series, err := timeseries.New(
		[]time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)},
		[]float64{10, 12, 14},
	)
	require.NoError(t, err)

	future, err := Project(series, 2)
	require.NoError(t, err)

	require.Equal(t, 2, future.Len())
	assert.InDelta(t, 16.0, future.Close[0], 1e-9)
	assert.InDelta(t, 18.0, future.Close[1], 1e-9)
}

func TestProjectDates(t *testing.T) {
	testData := map[string]struct {
		last     time.Time
		horizon  int
		expected []time.Time
	}{
		"midweek continuation": {
			last:    time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), // Tuesday
			horizon: 2,
			expected: []time.Time{
				time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		"friday rolls over the weekend": {
			last:    time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
			horizon: 3,
			expected: []time.Time{
				time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			series, err := timeseries.New([]time.Time{td.last}, []float64{10})
			require.NoError(t, err)

			future, err := Project(series, td.horizon)
			require.NoError(t, err)

			assert.Equal(t, td.expected, future.T)
			for _, futureT := range future.T {
				assert.True(t, futureT.After(series.EndTime()))
				assert.True(t, timeseries.IsBusinessDay(futureT))
			}
		})
	}
}

func TestProjectSinglePointConstant(t *testing.T) {
	series, err := timeseries.New(
		[]time.Time{time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		[]float64{100},
	)
	require.NoError(t, err)

	future, err := Project(series, 5)
	require.NoError(t, err)

	require.Equal(t, 5, future.Len())
	for _, c := range future.Close {
		assert.InDelta(t, 100.0, c, 1e-9)
	}
}

func TestProjectEmptySeries(t *testing.T) {
	_, err := Project(timeseries.Empty(), 5)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestProjectZeroHorizon(t *testing.T) {
	series, err := timeseries.New(
		[]time.Time{time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		[]float64{100},
	)
	require.NoError(t, err)

	future, err := Project(series, 0)
	require.NoError(t, err)
	assert.True(t, future.IsEmpty())
}

func TestProjectNeverOverlapsInput(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	series, err := timeseries.New(
		[]time.Time{start, start.AddDate(0, 0, 1)},
		[]float64{10, 11},
	)
	require.NoError(t, err)

	future, err := Project(series, 5)
	require.NoError(t, err)

	_, err = series.Concat(future)
	assert.NoError(t, err)
}
