package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consumerlab/markettrends/internal/domain"
)

func validAnalysis() *ConsumerTrendAnalysis {
	return NewConsumerTrendAnalysis(
		[]float64{100, 120, 140, 160, 180},
		[]float64{7.0, 7.5, 8.0, 8.5, 9.0},
		[]float64{50, 52, 54, 56, 58},
	)
}

func TestValidate_Success(t *testing.T) {
	assert.NoError(t, validAnalysis().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		analysis *ConsumerTrendAnalysis
		wantType any
	}{
		{
			name:     "empty sales series",
			analysis: NewConsumerTrendAnalysis(nil, []float64{1}, []float64{1}),
			wantType: &domain.ValidationError{},
		},
		{
			name:     "negative price",
			analysis: NewConsumerTrendAnalysis([]float64{1}, []float64{1}, []float64{-0.5}),
			wantType: &domain.ValidationError{},
		},
		{
			name:     "non-finite satisfaction",
			analysis: NewConsumerTrendAnalysis([]float64{1}, []float64{math.NaN()}, []float64{1}),
			wantType: &domain.CoercionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.analysis.Validate()
			require.Error(t, err)

			switch tt.wantType.(type) {
			case *domain.ValidationError:
				var vErr *domain.ValidationError
				assert.ErrorAs(t, err, &vErr)
			case *domain.CoercionError:
				var cErr *domain.CoercionError
				assert.ErrorAs(t, err, &cErr)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	summaries := validAnalysis().Summarize()
	require.Contains(t, summaries, "sales")
	require.Contains(t, summaries, "satisfaction")
	require.Contains(t, summaries, "price")

	sales := summaries["sales"]
	assert.InDelta(t, 140.0, sales.Mean, 1e-9)
	assert.InDelta(t, 140.0, sales.Median, 1e-9)
	// Sample stdev of {100,120,140,160,180}: sqrt(4000/4) via deviations
	// {-40,-20,0,20,40} -> sqrt(1000).
	assert.InDelta(t, math.Sqrt(1000), sales.StdDev, 1e-9)
}

func TestSummarize_EvenLengthMedian(t *testing.T) {
	a := NewConsumerTrendAnalysis(
		[]float64{10, 30, 20, 40},
		[]float64{1, 1, 1, 1},
		[]float64{1, 1, 1, 1},
	)
	assert.InDelta(t, 25.0, a.Summarize()["sales"].Median, 1e-9)
}

func TestSummarize_SingleObservation(t *testing.T) {
	a := NewConsumerTrendAnalysis([]float64{42}, []float64{4.2}, []float64{9.9})
	require.NoError(t, a.Validate())

	sales := a.Summarize()["sales"]
	assert.Equal(t, 42.0, sales.Mean)
	assert.Equal(t, 42.0, sales.Median)
	// Sample stdev is undefined for n=1; reported as 0.
	assert.Equal(t, 0.0, sales.StdDev)
}

func TestPredict(t *testing.T) {
	fits, err := validAnalysis().Predict()
	require.NoError(t, err)

	require.Contains(t, fits, "sales_trend")
	require.Contains(t, fits, "satisfaction_trend")
	require.Contains(t, fits, "price_trend")

	sales := fits["sales_trend"]
	assert.InDelta(t, 20.0, sales.Slope, 1e-9)
	assert.InDelta(t, 100.0, sales.Intercept, 1e-9)
	assert.Len(t, sales.Fitted, 5)
}

func TestPredict_EmptySeries(t *testing.T) {
	a := NewConsumerTrendAnalysis(nil, []float64{1}, []float64{1})
	_, err := a.Predict()
	require.Error(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
