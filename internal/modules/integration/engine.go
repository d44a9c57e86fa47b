// Package integration orchestrates the trend analysis workflow: validate
// registered analyses, collect their predictions, attach derived scores to
// products and build the market report.
package integration

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consumerlab/markettrends/internal/domain"
	"github.com/consumerlab/markettrends/internal/modules/analysis"
	"github.com/consumerlab/markettrends/internal/modules/report"
	"github.com/consumerlab/markettrends/internal/modules/trend"
)

// DefaultTrendKey selects the prediction used for product scoring.
const DefaultTrendKey = "sales_trend"

// Engine coordinates trend analysis across the application. Every engine
// run carries a correlation ID in its log context.
type Engine struct {
	analyses []analysis.Analysis
	log      zerolog.Logger
}

// NewEngine creates an engine over the registered analyses. Order matters:
// predictions are collected in registration order and product scoring reads
// the first analysis.
func NewEngine(analyses []analysis.Analysis, log zerolog.Logger) *Engine {
	return &Engine{
		analyses: analyses,
		log: log.With().
			Str("component", "integration").
			Str("run_id", uuid.New().String()).
			Logger(),
	}
}

// RunValidation validates every registered analysis, failing fast on the
// first error. It is not partial-failure tolerant.
func (e *Engine) RunValidation() error {
	for i, a := range e.analyses {
		if err := a.Validate(); err != nil {
			e.log.Error().Err(err).Int("analysis", i).Msg("Analysis validation failed")
			return fmt.Errorf("analysis %d: %w", i, err)
		}
	}
	e.log.Debug().Int("analyses", len(e.analyses)).Msg("All analyses validated")
	return nil
}

// CollectSummaries gathers summary statistics from all analyses in
// registration order.
func (e *Engine) CollectSummaries() []map[string]analysis.Summary {
	summaries := make([]map[string]analysis.Summary, 0, len(e.analyses))
	for _, a := range e.analyses {
		summaries = append(summaries, a.Summarize())
	}
	return summaries
}

// CollectPredictions gathers trend predictions from all analyses in
// registration order.
func (e *Engine) CollectPredictions() ([]map[string]trend.Fit, error) {
	predictions := make([]map[string]trend.Fit, 0, len(e.analyses))
	for i, a := range e.analyses {
		fits, err := a.Predict()
		if err != nil {
			return nil, fmt.Errorf("analysis %d: %w", i, err)
		}
		predictions = append(predictions, fits)
	}
	return predictions, nil
}

// AttachTrendScores derives a score from the first analysis's prediction
// for trendKey (empty selects DefaultTrendKey) and assigns it to every
// product. This is a broadcast: all products receive the identical
// round(slope*100, 2) value. A missing key falls back to slope 0 rather
// than failing.
func (e *Engine) AttachTrendScores(products []*domain.ScoredProduct, trendKey string) error {
	if len(e.analyses) == 0 {
		return domain.NewValidationError("analyses", "at least one analysis is required")
	}
	if trendKey == "" {
		trendKey = DefaultTrendKey
	}

	predictions, err := e.CollectPredictions()
	if err != nil {
		return err
	}

	slope := 0.0
	if fit, ok := predictions[0][trendKey]; ok {
		slope = fit.Slope
	} else {
		e.log.Warn().Str("trend_key", trendKey).Msg("Trend key missing from first analysis, scoring with slope 0")
	}

	score := math.Round(slope*100*100) / 100
	for _, p := range products {
		p.SetTrendScore(score)
	}

	e.log.Info().
		Str("trend_key", trendKey).
		Float64("score", score).
		Int("products", len(products)).
		Msg("Attached trend scores")
	return nil
}

// GenerateMarketReport wraps the scored products in a market report.
func (e *Engine) GenerateMarketReport(products []*domain.ScoredProduct) *report.MarketReport {
	scorables := make([]domain.TrendScorable, len(products))
	for i, p := range products {
		scorables[i] = p
	}
	return report.New(scorables)
}
