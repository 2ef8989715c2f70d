package matcher

import (
	"strings"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/market"
	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
	"github.com/verityai/capital-recommender/internal/researcher"
)

// Breakdown is the per-dimension score set behind an overall match score.
type Breakdown struct {
	Compatibility       float64 `json:"compatibility"`
	ApprovalProbability float64 `json:"approval_probability"`
	CommercialValue     float64 `json:"commercial_value"`
	StrategicFit        float64 `json:"strategic_fit"`
}

func (m *Matcher) score(intel *analyzer.Intelligence, src *researcher.EligibleSource, p *profile.BusinessProfile) (float64, Breakdown) {
	b := Breakdown{
		Compatibility:       compatibilityScore(intel, src, p),
		ApprovalProbability: approvalProbability(intel, src),
		CommercialValue:     commercialValue(src, p),
		StrategicFit:        strategicFit(src, p),
	}
	overall := b.Compatibility*m.cfg.Weights.Compatibility +
		b.ApprovalProbability*m.cfg.Weights.ApprovalProbability +
		b.CommercialValue*m.cfg.Weights.CommercialValue +
		b.StrategicFit*m.cfg.Weights.StrategicFit
	return clamp01(overall), b
}

// compatibilityScore: sector 25%, stage 25%, geography 20%, amount 20%,
// compliance 10%.
func compatibilityScore(intel *analyzer.Intelligence, src *researcher.EligibleSource, p *profile.BusinessProfile) float64 {
	score := sectorCompatibility(src, p.Sector)*0.25 +
		stageCompatibility(src.Type, intel.Stage)*0.25 +
		geographicCompatibility(src, p.Location)*0.20 +
		amountCompatibility(src, p.FundingAmount)*0.20 +
		complianceScore*0.10
	return clamp01(score)
}

// Compliance is a flat assumption until source records carry regulatory
// metadata.
const complianceScore = 0.9

func sectorCompatibility(src *researcher.EligibleSource, sector refdata.Sector) float64 {
	switch {
	case src.SectorExcluded(sector):
		return 0.0
	case src.SectorAllowed(sector):
		return 1.0
	default:
		// Adjacent-sector flexibility.
		return 0.3
	}
}

var stagePreferences = map[refdata.FundingType]map[refdata.BusinessStage]float64{
	refdata.TypeBankLoan:        {refdata.StageMature: 1.0, refdata.StageGrowth: 0.8, refdata.StageStartup: 0.4},
	refdata.TypeAssetFinance:    {refdata.StageMature: 1.0, refdata.StageGrowth: 0.9, refdata.StageStartup: 0.6},
	refdata.TypeAngelInvestment: {refdata.StageStartup: 1.0, refdata.StageGrowth: 0.7, refdata.StageMature: 0.3},
	refdata.TypeVentureCapital:  {refdata.StageStartup: 0.9, refdata.StageGrowth: 1.0, refdata.StageMature: 0.2},
	refdata.TypeCrowdfunding:    {refdata.StageStartup: 0.8, refdata.StageGrowth: 0.9, refdata.StageMature: 0.5},
	refdata.TypeGovernmentGrant: {refdata.StageStartup: 0.9, refdata.StageGrowth: 0.8, refdata.StageMature: 0.6},
	refdata.TypeFamilyOffice:    {refdata.StageGrowth: 1.0, refdata.StageMature: 0.8, refdata.StageStartup: 0.6},
}

func stageCompatibility(t refdata.FundingType, stage refdata.BusinessStage) float64 {
	if prefs, ok := stagePreferences[t]; ok {
		if score, ok := prefs[stage]; ok {
			return score
		}
	}
	return 0.5
}

func geographicCompatibility(src *researcher.EligibleSource, region refdata.Region) float64 {
	if src.ServesRegion(region) {
		return 1.0
	}
	return 0.0
}

// amountCompatibility scores 1.0 when the amount sits in the middle half of
// the source's range, 0.8 elsewhere inside it, 0 outside it.
func amountCompatibility(src *researcher.EligibleSource, amount float64) float64 {
	if !src.Amount.Contains(amount) {
		return 0.0
	}
	mid := (src.Amount.Min + src.Amount.Max) / 2
	span := src.Amount.Max - src.Amount.Min
	if abs(amount-mid) <= span*0.25 {
		return 1.0
	}
	return 0.8
}

// approvalProbability: historical 30%, appetite 25%, financial health 25%,
// management 10%, market conditions 10%.
func approvalProbability(intel *analyzer.Intelligence, src *researcher.EligibleSource) float64 {
	score := historicalSuccessRate(intel, src.Type)*0.30 +
		appetiteScore(src.Appetite)*0.25 +
		financialAlignment(intel)*0.25 +
		managementFit(intel, src.Type)*0.10 +
		marketConditionScore(src.SectorMarketStatus)*0.10
	return clamp01(score)
}

var baseSuccessRates = map[refdata.FundingType]float64{
	refdata.TypeBankLoan:        0.65,
	refdata.TypeAssetFinance:    0.75,
	refdata.TypeAngelInvestment: 0.25,
	refdata.TypeVentureCapital:  0.15,
	refdata.TypeCrowdfunding:    0.45,
	refdata.TypeGovernmentGrant: 0.35,
	refdata.TypeFamilyOffice:    0.40,
}

// historicalSuccessRate scales the type's base approval rate by funding
// readiness and creditworthiness.
func historicalSuccessRate(intel *analyzer.Intelligence, t refdata.FundingType) float64 {
	base, ok := baseSuccessRates[t]
	if !ok {
		base = 0.5
	}
	return clamp01(base * (0.5 + 0.5*intel.FundingReadiness) * (0.5 + 0.5*intel.Creditworthiness))
}

func appetiteScore(a refdata.Appetite) float64 {
	switch a {
	case refdata.AppetiteAggressive:
		return 1.0
	case refdata.AppetiteNeutral:
		return 0.7
	case refdata.AppetiteSelective:
		return 0.5
	case refdata.AppetiteCautious:
		return 0.3
	default:
		return 0.5
	}
}

func financialAlignment(intel *analyzer.Intelligence) float64 {
	return clamp01(intel.Creditworthiness*0.6 + intel.Indicators.RepaymentCapacity*0.4)
}

// managementFit weighs the team heavily for equity investors, lightly for
// secured lenders.
func managementFit(intel *analyzer.Intelligence, t refdata.FundingType) float64 {
	strength := intel.Indicators.ManagementStrength
	if t == refdata.TypeVentureCapital || t == refdata.TypeAngelInvestment {
		return clamp01(strength)
	}
	return clamp01(0.7 + strength*0.3)
}

func marketConditionScore(status market.SectorStatus) float64 {
	switch status {
	case market.StatusHot:
		return 1.0
	case market.StatusCold:
		return 0.4
	default:
		return 0.7
	}
}

// commercialValue: commission 40%, processing efficiency 30%, relationship
// quality 20%, application complexity 10%.
func commercialValue(src *researcher.EligibleSource, p *profile.BusinessProfile) float64 {
	score := commissionPotential(src, p.FundingAmount)*0.40 +
		processingEfficiency(src.ApprovalTimeline)*0.30 +
		relationshipQuality(src)*0.20 +
		applicationSimplicity(src.Type)*0.10
	return clamp01(score)
}

// commissionPotential normalizes expected broker revenue against a £10,000
// benchmark deal.
func commissionPotential(src *researcher.EligibleSource, amount float64) float64 {
	revenue := src.Commission.Mean() / 100 * amount
	return clamp01(revenue / 10_000)
}

// processingEfficiency rewards fast approvals. Scored on the source's
// published timeline, not the market-adjusted one.
func processingEfficiency(timeline string) float64 {
	if !strings.Contains(timeline, "week") {
		return 0.5
	}
	_, maxWeeks, ok := market.ParseWeekRange(timeline)
	if !ok {
		return 0.5
	}
	eff := 1.0 - float64(maxWeeks-1)/20
	if eff < 0.1 {
		return 0.1
	}
	return eff
}

func relationshipQuality(src *researcher.EligibleSource) float64 {
	if src.Availability == refdata.StatusRelationshipBased {
		return 0.9
	}
	if src.Type == refdata.TypeFamilyOffice || src.Type == refdata.TypeVentureCapital {
		return 0.8
	}
	return 0.6
}

var simplicityByType = map[refdata.FundingType]float64{
	refdata.TypeAssetFinance:    0.9,
	refdata.TypeBankLoan:        0.7,
	refdata.TypeCrowdfunding:    0.6,
	refdata.TypeGovernmentGrant: 0.4,
	refdata.TypeVentureCapital:  0.3,
	refdata.TypeAngelInvestment: 0.5,
	refdata.TypeFamilyOffice:    0.4,
}

// applicationSimplicity scores the inverse of application burden.
func applicationSimplicity(t refdata.FundingType) float64 {
	if s, ok := simplicityByType[t]; ok {
		return s
	}
	return 0.5
}

// strategicFit: long-term potential 40%, portfolio fit 20%, reputation 20%,
// follow-on 10%, network 10%.
func strategicFit(src *researcher.EligibleSource, p *profile.BusinessProfile) float64 {
	score := longTermPotential(src.Type)*0.40 +
		portfolioFit*0.20 +
		reputationScore(src.Name)*0.20 +
		followOnPotential(src.Type)*0.10 +
		networkBenefits(src.Type, p.Sector)*0.10
	return clamp01(score)
}

// Most placed deals add portfolio value for the broker.
const portfolioFit = 0.7

func longTermPotential(t refdata.FundingType) float64 {
	switch {
	case refdata.EquityType(t):
		return 0.9
	case refdata.DebtType(t):
		return 0.6
	default:
		return 0.4
	}
}

var reputationByBrand = map[string]float64{
	"Barclays":  0.9,
	"Lloyds":    0.9,
	"Seedcamp":  0.8,
	"Crowdcube": 0.7,
}

// reputationScore matches known brand names by substring, defaulting to a
// mid reputation for everyone else.
func reputationScore(name string) float64 {
	for brand, score := range reputationByBrand {
		if strings.Contains(name, brand) {
			return score
		}
	}
	return 0.6
}

func followOnPotential(t refdata.FundingType) float64 {
	switch t {
	case refdata.TypeVentureCapital, refdata.TypeAngelInvestment:
		return 0.8
	case refdata.TypeFamilyOffice:
		return 0.7
	default:
		return 0.3
	}
}

func networkBenefits(t refdata.FundingType, sector refdata.Sector) float64 {
	switch {
	case t == refdata.TypeVentureCapital, t == refdata.TypeAngelInvestment, t == refdata.TypeFamilyOffice:
		return 0.8
	case sector == refdata.SectorTechnology:
		return 0.6
	default:
		return 0.4
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
