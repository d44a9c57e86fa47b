// Package main is the entry point for the markettrends consumer market
// analysis tool. It wires the core modules together and runs the pipeline
// once: import participant records, anonymize them, analyze the market
// series, attach derived trend scores to products and export the resulting
// report. All business logic lives in internal/; this file is glue.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/consumerlab/markettrends/internal/config"
	"github.com/consumerlab/markettrends/internal/domain"
	"github.com/consumerlab/markettrends/internal/modules/analysis"
	"github.com/consumerlab/markettrends/internal/modules/integration"
	"github.com/consumerlab/markettrends/internal/modules/participants"
	"github.com/consumerlab/markettrends/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.DevMode})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Pipeline failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	// Market analysis over the demo consumer series.
	consumer := analysis.NewConsumerTrendAnalysis(
		[]float64{100, 120, 140, 160, 180},
		[]float64{4.0, 4.2, 4.4, 4.6, 4.8},
		[]float64{50, 52, 54, 56, 58},
	)

	engine := integration.NewEngine([]analysis.Analysis{consumer}, log)
	if err := engine.RunValidation(); err != nil {
		return err
	}

	products := []*domain.ScoredProduct{
		domain.NewScoredProduct("Laptop"),
		domain.NewScoredProduct("E-Book"),
		domain.NewScoredProduct("Headphones"),
	}
	if err := engine.AttachTrendScores(products, integration.DefaultTrendKey); err != nil {
		return err
	}

	marketReport := engine.GenerateMarketReport(products)
	summary := marketReport.Summary()
	log.Info().
		Int("total_products", summary.TotalProducts).
		Float64("average_trend_score", summary.AverageTrendScore).
		Msg("Market report generated")

	store := participants.NewStore(cfg.DataDir, log)

	// Optional participant import: markettrends <records.json|records.csv>
	if len(os.Args) > 1 {
		imported, msg, err := store.ImportFromSource(os.Args[1])
		if err != nil {
			log.Error().Err(err).Msg(msg)
			return err
		}
		log.Info().Msg(msg)

		anonymizer := participants.NewAnonymizer()
		if msg, err := store.ExportReport(anonymizer.Anonymize(imported), "anonymized_participants.json"); err != nil {
			log.Error().Err(err).Msg(msg)
			return err
		}
	}

	reportData := map[string]any{
		"summary":     summary,
		"summaries":   engine.CollectSummaries(),
		"data_dir":    cfg.DataDir,
		"trend_key":   integration.DefaultTrendKey,
		"total_score": summary.AverageTrendScore * float64(summary.TotalProducts),
	}
	msg, err := store.ExportReport(reportData, "analysis_report.json")
	if err != nil {
		log.Error().Err(err).Msg(msg)
		return err
	}
	log.Info().Msg(msg)
	return nil
}
