// Package trend fits linear trends over equally spaced observation series.
package trend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/consumerlab/markettrends/internal/domain"
)

// Fit is the result of an ordinary least squares fit against the implicit
// index x = 0, 1, ..., n-1. Purely derived from the input series.
type Fit struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Fitted    []float64 `json:"fitted_values"`
}

// FitLinear fits y against its index positions using ordinary least squares.
// A single-point series is a degenerate but valid fit (slope 0, intercept
// equal to the point). An empty series fails with ValidationError; a
// non-finite element fails with CoercionError.
func FitLinear(y []float64) (Fit, error) {
	if len(y) == 0 {
		return Fit{}, domain.NewValidationError("series", "must not be empty")
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Fit{}, domain.NewCoercionError(fmt.Sprintf("series[%d]", i), v, "finite float64")
		}
	}

	if len(y) == 1 {
		return Fit{Slope: 0, Intercept: y[0], Fitted: []float64{y[0]}}, nil
	}

	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	fitted := make([]float64, len(y))
	for i := range fitted {
		fitted[i] = slope*float64(i) + intercept
	}

	return Fit{Slope: slope, Intercept: intercept, Fitted: fitted}, nil
}
