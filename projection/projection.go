// Package projection fits a least-squares line to a historical price series
// and extrapolates it over the next business days. This is a crude trend
// continuation, not a statistical forecast, and deliberately carries no
// smoothing, seasonality, or uncertainty bands.
package projection

import (
	"errors"
	"time"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/timeseries"
	"gonum.org/v1/gonum/mat"
)

var ErrNoSamples = errors.New("no samples to fit")

// Line holds the coefficients of a degree-1 polynomial y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at position x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Fit computes the ordinary least squares line over (i, y[i]) pairs using QR
// factorization. A single sample degenerates to a zero-slope constant line.
func Fit(y []float64) (Line, error) {
	m := len(y)
	if m == 0 {
		return Line{}, ErrNoSamples
	}
	if m == 1 {
		return Line{Intercept: y[0]}, nil
	}

	// design matrix with an intercept column and the sample position
	const n = 2
	obs := make([]float64, m*n)
	for i := 0; i < m; i++ {
		obs[n*i] = 1.0
		obs[n*i+1] = float64(i)
	}
	x := mat.NewDense(m, n, obs)
	yT := mat.NewDense(1, m, y)

	qr := new(mat.QR)
	qr.Factorize(x)

	q := new(mat.Dense)
	r := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(r)

	yq := new(mat.Dense)
	yq.Mul(yT, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	return Line{
		Slope:     c[1],
		Intercept: c[0],
	}, nil
}

// Project fits a line to the series closing prices and evaluates it at the
// next horizon positions, mapped onto the consecutive business days strictly
// after the series' last date. The result never overlaps the input dates.
func Project(series *timeseries.PriceSeries, horizon int) (*timeseries.PriceSeries, error) {
	if series.IsEmpty() {
		return nil, ErrNoSamples
	}
	if horizon <= 0 {
		return timeseries.Empty(), nil
	}

	line, err := Fit(series.Close)
	if err != nil {
		return nil, err
	}

	n := series.Len()
	t := make([]time.Time, 0, horizon)
	close := make([]float64, 0, horizon)

	day := series.EndTime()
	for i := 0; i < horizon; i++ {
		day = timeseries.NextBusinessDay(day)
		t = append(t, day)
		close = append(close, line.At(float64(n+i)))
	}
	return timeseries.New(t, close)
}
