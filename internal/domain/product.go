// Package domain holds the core product model shared by the report and
// integration modules, together with the error taxonomy used across the
// application.
//
// Two kinds of products satisfy TrendScorable: the computed variants
// (PhysicalProduct, DigitalProduct) derive their trend score from their own
// market figures, while ScoredProduct carries a score assigned externally by
// the integration engine. MarketReport consumes both through the same
// interface.
package domain

import (
	"math"
	"strings"
)

// Product type discriminators used in serialized records.
const (
	TypePhysical = "physical"
	TypeDigital  = "digital"
)

// TrendScorable is the capability consumed by market reports: anything with
// a name and a non-negative trend score.
type TrendScorable interface {
	Name() string
	TrendScore() float64
	ProductType() string
}

// productBase holds the attributes common to physical and digital products.
// Fields are validated at construction and immutable afterwards.
type productBase struct {
	name         string
	sales        int
	returns      int
	satisfaction float64
}

func newProductBase(name string, sales, returns int, satisfaction float64) (productBase, error) {
	if strings.TrimSpace(name) == "" {
		return productBase{}, NewValidationError("name", "must be a non-empty string")
	}
	if sales <= 0 {
		return productBase{}, NewValidationError("sales", "must be greater than 0")
	}
	if returns < 0 {
		return productBase{}, NewValidationError("returns", "must be greater than or equal to 0")
	}
	if satisfaction < 0.0 || satisfaction > 5.0 {
		return productBase{}, NewValidationError("satisfaction", "must be between 0.0 and 5.0")
	}
	return productBase{name: name, sales: sales, returns: returns, satisfaction: satisfaction}, nil
}

func (p productBase) Name() string          { return p.name }
func (p productBase) Sales() int            { return p.sales }
func (p productBase) Returns() int          { return p.returns }
func (p productBase) Satisfaction() float64 { return p.satisfaction }

// returnRate is safe: sales > 0 is enforced at construction.
func (p productBase) returnRate() float64 {
	return float64(p.returns) / float64(p.sales)
}

// PhysicalProduct is a tangible good. Its trend score penalizes return rate
// and weight (a shipping/handling cost proxy).
type PhysicalProduct struct {
	productBase
	weight float64
}

// NewPhysicalProduct validates all fields and constructs an immutable
// physical product. Weight must be greater than 0.
func NewPhysicalProduct(name string, sales, returns int, satisfaction, weight float64) (*PhysicalProduct, error) {
	base, err := newProductBase(name, sales, returns, satisfaction)
	if err != nil {
		return nil, err
	}
	if weight <= 0.0 {
		return nil, NewValidationError("weight", "must be greater than 0")
	}
	return &PhysicalProduct{productBase: base, weight: weight}, nil
}

// Weight returns the product weight in kilograms.
func (p *PhysicalProduct) Weight() float64 { return p.weight }

// ProductType returns the serialization discriminator.
func (p *PhysicalProduct) ProductType() string { return TypePhysical }

// TrendScore rewards sales and satisfaction, penalizes return rate and
// weight. Never negative.
func (p *PhysicalProduct) TrendScore() float64 {
	base := float64(p.sales)*0.1 + p.satisfaction*20.0
	penalty := p.returnRate()*50.0 + p.weight*0.5
	return math.Max(base-penalty, 0.0)
}

// DigitalProduct is a digital good. Its trend score rewards download
// engagement and lightly penalizes return rate.
type DigitalProduct struct {
	productBase
	downloads int
}

// NewDigitalProduct validates all fields and constructs an immutable digital
// product. Downloads must be greater than or equal to 0.
func NewDigitalProduct(name string, sales, returns int, satisfaction float64, downloads int) (*DigitalProduct, error) {
	base, err := newProductBase(name, sales, returns, satisfaction)
	if err != nil {
		return nil, err
	}
	if downloads < 0 {
		return nil, NewValidationError("downloads", "must be greater than or equal to 0")
	}
	return &DigitalProduct{productBase: base, downloads: downloads}, nil
}

// Downloads returns the total download count.
func (p *DigitalProduct) Downloads() int { return p.downloads }

// ProductType returns the serialization discriminator.
func (p *DigitalProduct) ProductType() string { return TypeDigital }

// TrendScore rewards sales, satisfaction and downloads, penalizes return
// rate. Never negative.
func (p *DigitalProduct) TrendScore() float64 {
	base := float64(p.sales)*0.1 + p.satisfaction*25.0
	bonus := float64(p.downloads) * 0.05
	penalty := p.returnRate() * 20.0
	return math.Max(base+bonus-penalty, 0.0)
}

// ScoredProduct is the integration-engine variant: a bare named record whose
// trend score is assigned externally rather than computed from market
// figures. It satisfies the same TrendScorable interface as the computed
// variants.
type ScoredProduct struct {
	name  string
	score float64
}

// NewScoredProduct creates a product with a zero trend score.
func NewScoredProduct(name string) *ScoredProduct {
	return &ScoredProduct{name: name}
}

func (p *ScoredProduct) Name() string        { return p.name }
func (p *ScoredProduct) TrendScore() float64 { return p.score }

// ProductType returns "scored"; scored products never round-trip through
// the tagged-map serialization.
func (p *ScoredProduct) ProductType() string { return "scored" }

// SetTrendScore assigns the externally derived score.
func (p *ScoredProduct) SetTrendScore(score float64) { p.score = score }
