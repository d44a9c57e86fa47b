// Package analysis validates consumer market data series and derives
// summary statistics and linear trend predictions from them.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/consumerlab/markettrends/internal/domain"
	"github.com/consumerlab/markettrends/internal/modules/trend"
)

// Analysis is the contract consumed by the integration engine: validate the
// underlying data, summarize it, and predict per-series trends.
// Validate returns nil on success; it never reports failure as a value.
type Analysis interface {
	Validate() error
	Summarize() map[string]Summary
	Predict() (map[string]trend.Fit, error)
}

// Summary holds descriptive statistics for a single series.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdev"`
}

// ConsumerTrendAnalysis analyzes three parallel consumer market series:
// sales, satisfaction and price. Series are copied at construction and never
// mutated.
type ConsumerTrendAnalysis struct {
	sales        []float64
	satisfaction []float64
	price        []float64
}

// NewConsumerTrendAnalysis creates an analysis over copies of the given
// series. Call Validate before Summarize or Predict.
func NewConsumerTrendAnalysis(sales, satisfaction, price []float64) *ConsumerTrendAnalysis {
	return &ConsumerTrendAnalysis{
		sales:        append([]float64(nil), sales...),
		satisfaction: append([]float64(nil), satisfaction...),
		price:        append([]float64(nil), price...),
	}
}

// series returns the named series in a fixed order, so summaries and
// predictions are deterministic across runs.
func (a *ConsumerTrendAnalysis) series() []struct {
	name string
	data []float64
} {
	return []struct {
		name string
		data []float64
	}{
		{"sales", a.sales},
		{"satisfaction", a.satisfaction},
		{"price", a.price},
	}
}

// Validate checks every series: non-empty, finite, non-negative. The first
// violation is returned (ValidationError for empty or negative data,
// CoercionError for non-finite elements).
func (a *ConsumerTrendAnalysis) Validate() error {
	for _, s := range a.series() {
		if len(s.data) == 0 {
			return domain.NewValidationError(s.name, "series must not be empty")
		}
		for i, v := range s.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return domain.NewCoercionError(fmt.Sprintf("%s[%d]", s.name, i), v, "finite float64")
			}
			if v < 0 {
				return domain.NewValidationError(fmt.Sprintf("%s[%d]", s.name, i), "series must not contain negative values")
			}
		}
	}
	return nil
}

// Summarize computes mean, median and sample standard deviation per series.
// Meaningful only after Validate has passed.
func (a *ConsumerTrendAnalysis) Summarize() map[string]Summary {
	out := make(map[string]Summary, 3)
	for _, s := range a.series() {
		out[s.name] = summarizeSeries(s.data)
	}
	return out
}

// Predict fits a linear trend per series, keyed "<series>_trend".
func (a *ConsumerTrendAnalysis) Predict() (map[string]trend.Fit, error) {
	out := make(map[string]trend.Fit, 3)
	for _, s := range a.series() {
		fit, err := trend.FitLinear(s.data)
		if err != nil {
			return nil, fmt.Errorf("predict %s: %w", s.name, err)
		}
		out[s.name+"_trend"] = fit
	}
	return out, nil
}

// summarizeSeries computes descriptive statistics for one series. The
// sample standard deviation of a single observation is reported as 0 to
// avoid the undefined n-1 division.
func summarizeSeries(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	stdev := 0.0
	if len(data) > 1 {
		stdev = stat.StdDev(data, nil)
	}

	return Summary{
		Mean:   stat.Mean(data, nil),
		Median: median(data),
		StdDev: stdev,
	}
}

// median works on a sorted copy; even-length series average the two middle
// elements.
func median(data []float64) float64 {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}
