// Package analyzer turns a business profile into the intelligence record
// the researcher and matcher consume: risk, stage, creditworthiness,
// funding readiness, matching tags, and red flags.
package analyzer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
)

// Funding-readiness component weights.
const (
	readinessFinancialWeight  = 0.40
	readinessMaturityWeight   = 0.25
	readinessSectorWeight     = 0.20
	readinessRiskWeight       = 0.15
	maturityHorizonYears      = 10.0
	managementStrengthDefault = 0.75
)

// Red-flag thresholds.
const (
	excessiveFundingRatio = 2.0
	veryNewBusinessYears  = 1.0
)

// Amounts over this qualify a business for equity recommendations.
const equityAmountFloor = 250_000

// Analyzer derives business intelligence from a profile and the static
// reference tables. Stateless; safe for concurrent use.
type Analyzer struct{}

// New returns an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze produces the intelligence record for a profile. It is total: any
// internal failure yields the documented fallback record instead of an
// error, so the pipeline always has something to match against.
func (a *Analyzer) Analyze(p *profile.BusinessProfile) (intel *Intelligence) {
	if p == nil {
		return fallbackIntelligence(nil)
	}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("business analysis failed, using fallback",
				zap.String("company", p.CompanyName),
				zap.Any("panic", r),
			)
			intel = fallbackIntelligence(p)
		}
	}()

	log := zap.L().With(zap.String("company", p.CompanyName))

	if !refdata.KnownSector(p.Sector) {
		log.Debug("sector not in reference table, using defaults",
			zap.String("sector", string(p.Sector)),
		)
	}

	sectorInfo := refdata.SectorData(p.Sector)
	regionInfo := refdata.RegionData(p.Location)
	size := refdata.ClassifyCompanySize(p.Employees, p.AnnualRevenue)
	attractiveness := sectorAttractiveness(sectorInfo)

	credit := creditworthiness(p.Financials.ProfitMargin, p.Financials.CashFlowMonths, p.AnnualRevenue)
	repayment := repaymentCapacity(p.AnnualRevenue, p.Financials.ProfitMargin)
	assets := assetBacking(p.Sector)

	risk := overallRisk(
		sectorInfo.Risk,
		refdata.GeographicRisk(regionInfo.BusinessDensity),
		financialRisk(p.Financials),
	)

	readiness := fundingReadiness(credit, p.BusinessAge, attractiveness, risk)

	intel = &Intelligence{
		RiskLevel:            risk,
		Stage:                businessStage(p.BusinessAge, p.AnnualRevenue),
		Creditworthiness:     credit,
		GrowthTrajectory:     growthTrajectory(p.BusinessAge),
		FundingReadiness:     readiness,
		SectorAttractiveness: attractiveness,
		Indicators: Indicators{
			AmountJustification: amountJustification(p.FundingAmount, p.AnnualRevenue),
			RepaymentCapacity:   repayment,
			AssetBacking:        assets,
			ManagementStrength:  managementStrengthDefault,
			DebtToEquity:        p.Financials.DebtToEquity,
		},
		MatchingTags:     matchingTags(p, size),
		RedFlags:         redFlags(p),
		RecommendedTypes: recommendFundingTypes(p, readiness),
	}

	log.Info("business analysis complete",
		zap.String("risk", string(risk)),
		zap.String("stage", string(intel.Stage)),
		zap.Float64("readiness", readiness),
	)
	return intel
}

// creditworthiness blends profit margin, cash runway, and revenue scale
// into a 0-1 score.
func creditworthiness(margin, cashFlowMonths, revenue float64) float64 {
	profitScore := clamp01(margin * 10)
	cashScore := clamp01(cashFlowMonths / 6)
	revenueScore := clamp01(revenue / 1_000_000)
	return clamp01(profitScore*0.4 + cashScore*0.3 + revenueScore*0.3)
}

// repaymentCapacity normalizes monthly profit against a £10,000/month
// servicing benchmark.
func repaymentCapacity(revenue, margin float64) float64 {
	monthly := revenue * margin / 12
	return clamp01(monthly / 10_000)
}

// assetBacking estimates collateral strength from the sector's typical
// asset intensity.
func assetBacking(sector refdata.Sector) float64 {
	base := 0.3
	switch sector {
	case refdata.SectorManufacturing, refdata.SectorConstruction:
		base += 0.2
	case refdata.SectorTechnology, refdata.SectorProfessionalService:
		base -= 0.1
	}
	return clamp01(base)
}

// sectorAttractiveness averages growth upside against sector risk.
func sectorAttractiveness(info refdata.SectorInfo) float64 {
	var growthScore float64
	switch info.Growth {
	case refdata.GrowthHigh:
		growthScore = 0.8
	case refdata.GrowthMedium:
		growthScore = 0.6
	case refdata.GrowthLow:
		growthScore = 0.4
	default:
		growthScore = 0.5
	}

	var riskScore float64
	switch info.Risk {
	case refdata.RiskLow:
		riskScore = 0.8
	case refdata.RiskMedium:
		riskScore = 0.6
	case refdata.RiskHigh:
		riskScore = 0.3
	default:
		riskScore = 0.5
	}

	return (growthScore + riskScore) / 2
}

// financialRisk counts cash-runway and margin triggers.
func financialRisk(f profile.Financials) refdata.RiskLevel {
	triggers := 0
	if f.CashFlowMonths < 2 {
		triggers++
	}
	if f.ProfitMargin < 0.05 {
		triggers++
	}
	switch triggers {
	case 0:
		return refdata.RiskLow
	case 1:
		return refdata.RiskMedium
	default:
		return refdata.RiskHigh
	}
}

// overallRisk averages the three independent ratings on the 1-3 scale.
func overallRisk(sector, geographic, financial refdata.RiskLevel) refdata.RiskLevel {
	total := refdata.RiskScore(sector) + refdata.RiskScore(geographic) + refdata.RiskScore(financial)
	return refdata.RiskFromMean(float64(total) / 3)
}

// fundingReadiness is the weighted composite of financial health, maturity,
// sector attractiveness, and risk.
func fundingReadiness(credit, age, attractiveness float64, risk refdata.RiskLevel) float64 {
	maturity := clamp01(age / maturityHorizonYears)

	var riskScore float64
	switch risk {
	case refdata.RiskLow:
		riskScore = 1.0
	case refdata.RiskMedium:
		riskScore = 0.7
	default:
		riskScore = 0.4
	}

	return clamp01(
		credit*readinessFinancialWeight +
			maturity*readinessMaturityWeight +
			attractiveness*readinessSectorWeight +
			riskScore*readinessRiskWeight,
	)
}

// businessStage classifies by age and revenue scale.
func businessStage(age, revenue float64) refdata.BusinessStage {
	switch {
	case age <= 2 && revenue < 500_000:
		return refdata.StageStartup
	case age <= 7 || revenue < 2_000_000:
		return refdata.StageGrowth
	default:
		return refdata.StageMature
	}
}

func growthTrajectory(age float64) GrowthTrajectory {
	if age <= 3 {
		return TrajectoryAccelerating
	}
	return TrajectoryStable
}

// amountJustification rates the request against annual revenue.
func amountJustification(amount, revenue float64) AmountJustification {
	ratio := amount / maxFloat(revenue, 1)
	switch {
	case ratio <= 0.5:
		return JustificationConservative
	case ratio <= 1.0:
		return JustificationReasonable
	case ratio <= excessiveFundingRatio:
		return JustificationOptimistic
	default:
		return JustificationExcessive
	}
}

// matchingTags builds the ordered tag list used for source matching.
func matchingTags(p *profile.BusinessProfile, size refdata.CompanySize) []string {
	tags := []string{
		fmt.Sprintf("%s_business", p.Sector),
		fmt.Sprintf("%s_enterprise", size),
		fmt.Sprintf("%s_location", p.Location),
	}

	switch {
	case p.BusinessAge <= 2:
		tags = append(tags, "startup")
	case p.BusinessAge <= 7:
		tags = append(tags, "growth_stage")
	default:
		tags = append(tags, "established")
	}

	if p.AnnualRevenue > 1_000_000 {
		tags = append(tags, "high_revenue")
	}
	return tags
}

// redFlags lists deal-breaker indicators.
func redFlags(p *profile.BusinessProfile) []string {
	var flags []string
	if p.FundingAmount/maxFloat(p.AnnualRevenue, 1) > excessiveFundingRatio {
		flags = append(flags, "excessive_funding_request")
	}
	if p.BusinessAge < veryNewBusinessYears {
		flags = append(flags, "very_new_business")
	}
	return flags
}

// recommendFundingTypes picks funding types by readiness band, de-duplicated
// preserving first-seen order.
func recommendFundingTypes(p *profile.BusinessProfile, readiness float64) []refdata.FundingType {
	var recs []refdata.FundingType
	switch {
	case readiness >= 0.8:
		if p.FundingAmount >= equityAmountFloor {
			recs = append(recs, refdata.TypeVentureCapital, refdata.TypeAngelInvestment)
		}
		recs = append(recs, refdata.TypeBankLoan, refdata.TypeAssetFinance)
	case readiness >= 0.6:
		recs = append(recs, refdata.TypeBankLoan, refdata.TypeAssetFinance, refdata.TypeCrowdfunding)
		if p.Sector == refdata.SectorTechnology {
			recs = append(recs, refdata.TypeAngelInvestment)
		}
	default:
		recs = append(recs, refdata.TypeAssetFinance, refdata.TypeCrowdfunding, refdata.TypeGovernmentGrant)
	}
	return dedupeTypes(recs)
}

// fallbackIntelligence is the documented degraded record: medium risk,
// unknown stage, readiness 0.4.
func fallbackIntelligence(p *profile.BusinessProfile) *Intelligence {
	tags := []string{"fallback_analysis"}
	if p != nil {
		tags = []string{string(p.Sector), "fallback_analysis"}
	}
	return &Intelligence{
		RiskLevel:            refdata.RiskMedium,
		Stage:                refdata.StageUnknown,
		Creditworthiness:     0.5,
		GrowthTrajectory:     TrajectoryStable,
		FundingReadiness:     0.4,
		SectorAttractiveness: 0.5,
		Indicators: Indicators{
			AmountJustification: JustificationUnknown,
			RepaymentCapacity:   0.5,
			AssetBacking:        0.3,
			ManagementStrength:  0.5,
			DebtToEquity:        profile.DefaultDebtToEquity,
		},
		MatchingTags:     tags,
		RedFlags:         []string{"incomplete_data"},
		RecommendedTypes: []refdata.FundingType{refdata.TypeAssetFinance, refdata.TypeCrowdfunding},
		Fallback:         true,
	}
}

func dedupeTypes(types []refdata.FundingType) []refdata.FundingType {
	seen := make(map[refdata.FundingType]bool, len(types))
	out := types[:0]
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
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

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
