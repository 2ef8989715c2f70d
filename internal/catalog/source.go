// Package catalog holds the funding-source catalog: the source records
// themselves, the built-in UK set, a YAML loader for external catalogs, and
// a versioned snapshot store so requests always read an immutable catalog.
package catalog

import (
	"github.com/verityai/capital-recommender/internal/refdata"
)

// AmountRange bounds the funding a source will originate. Both bounds are
// inclusive.
type AmountRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether amount falls inside the range, bounds included.
func (r AmountRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// CommissionRange is a broker commission band in percentage points.
type CommissionRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Mean returns the midpoint commission percentage.
func (c CommissionRange) Mean() float64 {
	return (c.Min + c.Max) / 2
}

// RateRange is an interest-rate or equity-stake band in percentage points.
type RateRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contact is how a broker reaches the source.
type Contact struct {
	Email string `yaml:"email" json:"email,omitempty"`
	Phone string `yaml:"phone" json:"phone,omitempty"`
}

// Source is one catalog entry: a named funding provider with fixed
// eligibility rules and commercial terms. Entries are immutable once a
// snapshot is taken; refresh builds new entries rather than mutating.
type Source struct {
	SourceID string              `yaml:"source_id" json:"source_id"`
	Name     string              `yaml:"name" json:"name"`
	Type     refdata.FundingType `yaml:"type" json:"type"`
	Category string              `yaml:"category" json:"category"`

	Amount AmountRange `yaml:"amount_range" json:"amount_range"`

	// Sectors is an allow-list; the single entry "all" admits every sector.
	Sectors         []string `yaml:"sectors" json:"sectors"`
	ExcludedSectors []string `yaml:"excluded_sectors" json:"excluded_sectors,omitempty"`

	MinTradingYears float64 `yaml:"min_trading_years" json:"min_trading_years"`
	// MaxTradingYears of zero means no upper bound.
	MaxTradingYears  float64 `yaml:"max_trading_years" json:"max_trading_years,omitempty"`
	MinAnnualRevenue float64 `yaml:"min_annual_revenue" json:"min_annual_revenue,omitempty"`

	// GeographicRequirement is empty for UK-wide sources.
	GeographicRequirement []string `yaml:"geographic_requirement" json:"geographic_requirement,omitempty"`

	// CreditScoreMin of zero means no credit threshold. Compared against
	// creditworthiness scaled to the 0-850 credit-score range.
	CreditScoreMin float64 `yaml:"credit_score_min" json:"credit_score_min,omitempty"`
	// MaxDebtRatio of zero means the default cap applies downstream.
	MaxDebtRatio float64 `yaml:"max_debt_ratio" json:"max_debt_ratio,omitempty"`

	InnovationRequirement   bool   `yaml:"innovation_requirement" json:"innovation_requirement,omitempty"`
	AssetRequirement        string `yaml:"asset_requirement" json:"asset_requirement,omitempty"`
	RelationshipRequirement bool   `yaml:"relationship_requirement" json:"relationship_requirement,omitempty"`

	InterestRate *RateRange `yaml:"interest_rate_range" json:"interest_rate_range,omitempty"`
	EquityRange  *RateRange `yaml:"equity_range" json:"equity_range,omitempty"`

	ApprovalTimeline string          `yaml:"approval_timeline" json:"approval_timeline"`
	SuccessFactors   []string        `yaml:"success_factors" json:"success_factors,omitempty"`
	Commission       CommissionRange `yaml:"broker_commission" json:"broker_commission"`
	Contact          Contact         `yaml:"contact" json:"contact"`

	Availability refdata.AvailabilityStatus `yaml:"availability_status" json:"availability_status"`
	Appetite     refdata.Appetite           `yaml:"current_appetite" json:"current_appetite"`
	LastUpdated  string                     `yaml:"last_updated" json:"last_updated"`
}

// AllSectors reports whether the allow-list admits every sector.
func (s *Source) AllSectors() bool {
	return len(s.Sectors) == 1 && s.Sectors[0] == "all"
}

// SectorExcluded reports whether the sector is on the exclude-list.
func (s *Source) SectorExcluded(sector refdata.Sector) bool {
	for _, ex := range s.ExcludedSectors {
		if ex == string(sector) {
			return true
		}
	}
	return false
}

// SectorAllowed reports whether the sector passes both the allow-list and
// the exclude-list.
func (s *Source) SectorAllowed(sector refdata.Sector) bool {
	if s.SectorExcluded(sector) {
		return false
	}
	if s.AllSectors() {
		return true
	}
	for _, sec := range s.Sectors {
		if sec == string(sector) {
			return true
		}
	}
	return false
}

// ServesRegion reports whether the source operates in the region. Sources
// without a geographic requirement are UK-wide.
func (s *Source) ServesRegion(region refdata.Region) bool {
	if len(s.GeographicRequirement) == 0 {
		return true
	}
	for _, r := range s.GeographicRequirement {
		if r == string(region) {
			return true
		}
	}
	return false
}

// RiskTolerance is the fixed risk appetite implied by the funding type:
// secured lenders tolerate only low-risk businesses, equity and alternative
// investors tolerate any.
func (s *Source) RiskTolerance() refdata.RiskLevel {
	switch s.Type {
	case refdata.TypeBankLoan, refdata.TypeAssetFinance:
		return refdata.RiskLow
	case refdata.TypeAngelInvestment, refdata.TypeVentureCapital, refdata.TypeCrowdfunding:
		return refdata.RiskHigh
	default:
		return refdata.RiskMedium
	}
}
