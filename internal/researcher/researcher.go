// Package researcher narrows a catalog snapshot down to the funding sources
// a specific business could realistically obtain, then annotates the
// survivors with current market conditions and orders them by how actively
// each source is writing business.
package researcher

import (
	"sort"

	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/market"
	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
)

// Creditworthiness is scaled to this ceiling before comparison against a
// source's minimum credit score.
const creditScoreScale = 850

// Sources that leave max_debt_ratio unset still refuse grossly leveraged
// applicants.
const defaultMaxDebtRatio = 5.0

// Funding-readiness floors by funding type.
const (
	securedReadinessFloor = 0.4
	generalReadinessFloor = 0.6
)

// EligibleSource is a catalog source that survived filtering, annotated
// with the market view the matcher scores against.
type EligibleSource struct {
	catalog.Source

	MarketAppetite     refdata.Appetite    `json:"market_appetite"`
	SectorMarketStatus market.SectorStatus `json:"sector_market_status"`
	AdjustedTimeline   string              `json:"adjusted_timeline"`
}

// Researcher filters and prioritizes funding sources. Stateless.
type Researcher struct{}

func New() *Researcher {
	return &Researcher{}
}

// Research runs the full pipeline: eligibility filter, intelligence filter,
// market annotation, priority sort. An empty result is a valid outcome; an
// internal failure yields the hardcoded fallback list instead.
func (r *Researcher) Research(
	p *profile.BusinessProfile,
	intel *analyzer.Intelligence,
	snap *catalog.Snapshot,
	cond *market.Conditions,
) (eligible []EligibleSource) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Warn("source research failed, using fallback sources",
				zap.Any("panic", rec),
			)
			eligible = fallbackSources(p)
		}
	}()

	candidates := filterEligibility(snap.Sources, p)
	candidates = filterIntelligence(candidates, intel)

	eligible = annotateMarket(candidates, cond)
	sortByPriority(eligible)

	zap.L().Info("source research complete",
		zap.Int("catalog_size", len(snap.Sources)),
		zap.Int("eligible", len(eligible)),
		zap.Int("catalog_version", snap.Version),
	)
	return eligible
}

// filterEligibility applies the source's hard published criteria: amount
// bounds, sector lists, trading history, revenue floor, geography.
func filterEligibility(sources []catalog.Source, p *profile.BusinessProfile) []catalog.Source {
	var out []catalog.Source
	for i := range sources {
		s := &sources[i]
		if !s.Amount.Contains(p.FundingAmount) {
			continue
		}
		if !s.SectorAllowed(p.Sector) {
			continue
		}
		if p.BusinessAge < s.MinTradingYears {
			continue
		}
		if s.MaxTradingYears > 0 && p.BusinessAge > s.MaxTradingYears {
			continue
		}
		if p.AnnualRevenue < s.MinAnnualRevenue {
			continue
		}
		if !s.ServesRegion(p.Location) {
			continue
		}
		out = append(out, *s)
	}
	return out
}

// filterIntelligence applies the derived-score gates: risk tolerance,
// credit threshold, leverage cap, readiness floor.
func filterIntelligence(sources []catalog.Source, intel *analyzer.Intelligence) []catalog.Source {
	var out []catalog.Source
	for i := range sources {
		s := &sources[i]
		if !riskAccepted(s.RiskTolerance(), intel.RiskLevel) {
			continue
		}
		if s.CreditScoreMin > 0 && intel.Creditworthiness*creditScoreScale < s.CreditScoreMin {
			continue
		}
		maxDebt := s.MaxDebtRatio
		if maxDebt == 0 {
			maxDebt = defaultMaxDebtRatio
		}
		if intel.Indicators.DebtToEquity > maxDebt {
			continue
		}
		floor := generalReadinessFloor
		if refdata.DebtType(s.Type) {
			floor = securedReadinessFloor
		}
		if intel.FundingReadiness < floor {
			continue
		}
		out = append(out, *s)
	}
	return out
}

// riskAccepted implements the tolerance matrix: a low-tolerance source
// accepts only low-risk businesses, medium accepts low and medium, high
// accepts all.
func riskAccepted(tolerance, business refdata.RiskLevel) bool {
	return refdata.RiskScore(business) <= refdata.RiskScore(tolerance)
}

// annotateMarket attaches the category appetite, the sector temperature,
// and the market-adjusted approval timeline to each surviving source.
func annotateMarket(sources []catalog.Source, cond *market.Conditions) []EligibleSource {
	out := make([]EligibleSource, 0, len(sources))
	for _, s := range sources {
		appetite := cond.CategoryAppetite(s.Category)
		status := cond.SourceSectorStatus(s.Sectors)
		out = append(out, EligibleSource{
			Source:             s,
			MarketAppetite:     appetite,
			SectorMarketStatus: status,
			AdjustedTimeline:   market.AdjustTimeline(s.ApprovalTimeline, appetite, status),
		})
	}
	return out
}

var availabilityPoints = map[refdata.AvailabilityStatus]float64{
	refdata.StatusAcceptingApplications: 10,
	refdata.StatusSelective:             7,
	refdata.StatusSeasonalRounds:        5,
	refdata.StatusRelationshipBased:     3,
	refdata.StatusLimitedCapacity:       1,
}

var appetitePoints = map[refdata.Appetite]float64{
	refdata.AppetiteAggressive: 8,
	refdata.AppetiteNeutral:    5,
	refdata.AppetiteSelective:  3,
	refdata.AppetiteCautious:   1,
}

// priorityScore rewards sources that are open for business, hungry for
// deals, and pay well.
func priorityScore(s *EligibleSource) float64 {
	return availabilityPoints[s.Availability] +
		appetitePoints[s.Appetite] +
		s.Commission.Mean()
}

func sortByPriority(sources []EligibleSource) {
	sort.SliceStable(sources, func(i, j int) bool {
		return priorityScore(&sources[i]) > priorityScore(&sources[j])
	})
}

// fallbackSources is the degraded result when research itself fails: a
// generic bank loan, plus generic asset finance once the amount clears the
// usual asset-finance entry point.
func fallbackSources(p *profile.BusinessProfile) []EligibleSource {
	generic := func(id, name string, t refdata.FundingType, amount catalog.AmountRange, timeline, email string, commission catalog.CommissionRange) EligibleSource {
		return EligibleSource{
			Source: catalog.Source{
				SourceID:         id,
				Name:             name,
				Type:             t,
				Category:         "fallback",
				Amount:           amount,
				Sectors:          []string{"all"},
				ApprovalTimeline: timeline,
				Commission:       commission,
				Contact:          catalog.Contact{Email: email},
				Availability:     refdata.StatusUnknown,
				Appetite:         refdata.AppetiteNeutral,
			},
			MarketAppetite:     refdata.AppetiteNeutral,
			SectorMarketStatus: market.StatusNeutral,
			AdjustedTimeline:   timeline,
		}
	}

	out := []EligibleSource{
		generic("generic_bank_loan", "UK Business Bank Loan", refdata.TypeBankLoan,
			catalog.AmountRange{Min: 5_000, Max: 250_000}, "4-8 weeks",
			"info@ukbusinessbank.co.uk",
			catalog.CommissionRange{Min: 1, Max: 3}),
	}
	if p != nil && p.FundingAmount >= 10_000 {
		out = append(out, generic("generic_asset_finance", "UK Asset Finance", refdata.TypeAssetFinance,
			catalog.AmountRange{Min: 10_000, Max: 1_000_000}, "2-4 weeks",
			"info@ukassetfinance.co.uk",
			catalog.CommissionRange{Min: 2, Max: 5}))
	}
	return out
}
