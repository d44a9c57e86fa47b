// Package report aggregates trend-scorable products into market reports.
package report

import (
	"sort"

	"github.com/consumerlab/markettrends/internal/domain"
)

// MarketReport analyzes a collection of products. It is purely derived:
// every aggregate is computed on demand from the product list, and the
// report holds no state beyond the list itself.
type MarketReport struct {
	products []domain.TrendScorable
}

// Summary is the headline view of a report. TopProduct is nil for an empty
// report.
type Summary struct {
	TotalProducts     int     `json:"total_products"`
	AverageTrendScore float64 `json:"average_trend_score"`
	TopProduct        *string `json:"top_product"`
}

// New creates a report over the given products. The report does not care
// which concrete product variant each entry is.
func New(products []domain.TrendScorable) *MarketReport {
	return &MarketReport{products: products}
}

// Products returns the underlying product list.
func (r *MarketReport) Products() []domain.TrendScorable {
	return r.products
}

// AverageTrendScore returns the arithmetic mean of all trend scores, or 0.0
// for an empty report.
func (r *MarketReport) AverageTrendScore() float64 {
	if len(r.products) == 0 {
		return 0.0
	}

	total := 0.0
	for _, p := range r.products {
		total += p.TrendScore()
	}
	return total / float64(len(r.products))
}

// TopProduct returns the product with the highest trend score, or nil for
// an empty report. Ties resolve to the earliest entry.
func (r *MarketReport) TopProduct() domain.TrendScorable {
	if len(r.products) == 0 {
		return nil
	}

	top := r.products[0]
	for _, p := range r.products[1:] {
		if p.TrendScore() > top.TrendScore() {
			top = p
		}
	}
	return top
}

// Summary returns the report's headline aggregates.
func (r *MarketReport) Summary() Summary {
	s := Summary{
		TotalProducts:     len(r.products),
		AverageTrendScore: r.AverageTrendScore(),
	}
	if top := r.TopProduct(); top != nil {
		name := top.Name()
		s.TopProduct = &name
	}
	return s
}

// Ranked returns the products sorted by the given key, highest first when
// descending. A nil key ranks by trend score. The sort is stable: ties
// preserve input order. The underlying list is never reordered.
func (r *MarketReport) Ranked(key func(domain.TrendScorable) float64, descending bool) []domain.TrendScorable {
	if key == nil {
		key = func(p domain.TrendScorable) float64 { return p.TrendScore() }
	}

	ranked := append([]domain.TrendScorable(nil), r.products...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return key(ranked[i]) > key(ranked[j])
		}
		return key(ranked[i]) < key(ranked[j])
	})
	return ranked
}
