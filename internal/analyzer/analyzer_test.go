package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
)

func techProfile() *profile.BusinessProfile {
	return &profile.BusinessProfile{
		CompanyName:    "TechFlow Solutions",
		Sector:         refdata.SectorTechnology,
		AnnualRevenue:  450_000,
		Employees:      12,
		Location:       refdata.RegionLondon,
		BusinessAge:    3,
		FundingAmount:  250_000,
		FundingPurpose: "expansion",
		Timeline:       "3_months",
		Financials: profile.Financials{
			ProfitMargin:   profile.DefaultProfitMargin,
			CashFlowMonths: profile.DefaultCashFlowMonths,
			DebtToEquity:   profile.DefaultDebtToEquity,
		},
	}
}

func TestAnalyzeTechGrowthBusiness(t *testing.T) {
	intel := New().Analyze(techProfile())
	require.NotNil(t, intel)
	assert.False(t, intel.Fallback)

	assert.Equal(t, refdata.RiskLow, intel.RiskLevel)
	assert.Equal(t, refdata.StageGrowth, intel.Stage)
	assert.Equal(t, TrajectoryAccelerating, intel.GrowthTrajectory)
	assert.InDelta(t, 0.635, intel.Creditworthiness, 1e-9)
	assert.InDelta(t, 0.619, intel.FundingReadiness, 1e-9)
	assert.InDelta(t, 0.7, intel.SectorAttractiveness, 1e-9)

	assert.Equal(t, JustificationReasonable, intel.Indicators.AmountJustification)
	assert.InDelta(t, 1.0, intel.Indicators.DebtToEquity, 1e-9)
	assert.InDelta(t, 0.75, intel.Indicators.ManagementStrength, 1e-9)

	assert.Contains(t, intel.MatchingTags, "technology_business")
	assert.Contains(t, intel.MatchingTags, "small_enterprise")
	assert.Contains(t, intel.MatchingTags, "growth_stage")
	assert.Empty(t, intel.RedFlags)

	assert.Equal(t, []refdata.FundingType{
		refdata.TypeBankLoan,
		refdata.TypeAssetFinance,
		refdata.TypeCrowdfunding,
		refdata.TypeAngelInvestment,
	}, intel.RecommendedTypes)
}

func TestAnalyzeEstablishedManufacturer(t *testing.T) {
	p := &profile.BusinessProfile{
		CompanyName:   "Precision Parts Ltd",
		Sector:        refdata.SectorManufacturing,
		AnnualRevenue: 1_200_000,
		Employees:     35,
		Location:      refdata.RegionNorthWest,
		BusinessAge:   8,
		FundingAmount: 500_000,
		Financials: profile.Financials{
			ProfitMargin:   0.12,
			CashFlowMonths: 4,
			DebtToEquity:   0.8,
		},
	}

	intel := New().Analyze(p)
	require.NotNil(t, intel)

	// Revenue under £2m keeps an eight-year-old business in growth stage.
	assert.Equal(t, refdata.StageGrowth, intel.Stage)
	assert.Equal(t, TrajectoryStable, intel.GrowthTrajectory)
	assert.Contains(t, intel.MatchingTags, "established")
	assert.Contains(t, intel.MatchingTags, "high_revenue")
	assert.Contains(t, intel.RecommendedTypes, refdata.TypeBankLoan)
	assert.Contains(t, intel.RecommendedTypes, refdata.TypeAssetFinance)
	assert.InDelta(t, 0.8, intel.Indicators.DebtToEquity, 1e-9)
}

func TestAnalyzeRedFlags(t *testing.T) {
	p := techProfile()
	p.BusinessAge = 0.5
	p.FundingAmount = 1_500_000 // over twice revenue

	intel := New().Analyze(p)
	require.NotNil(t, intel)
	assert.Contains(t, intel.RedFlags, "excessive_funding_request")
	assert.Contains(t, intel.RedFlags, "very_new_business")
	assert.Equal(t, JustificationExcessive, intel.Indicators.AmountJustification)
	assert.Equal(t, refdata.StageStartup, intel.Stage)
	assert.Contains(t, intel.MatchingTags, "startup")
}

func TestAnalyzeLowReadinessTypes(t *testing.T) {
	p := &profile.BusinessProfile{
		CompanyName:   "Corner Shop",
		Sector:        refdata.SectorRetail,
		AnnualRevenue: 80_000,
		Employees:     2,
		Location:      refdata.RegionWales,
		BusinessAge:   1,
		FundingAmount: 40_000,
		Financials: profile.Financials{
			ProfitMargin:   0.03,
			CashFlowMonths: 1,
			DebtToEquity:   1.5,
		},
	}

	intel := New().Analyze(p)
	require.NotNil(t, intel)
	assert.Less(t, intel.FundingReadiness, 0.6)
	assert.Equal(t, []refdata.FundingType{
		refdata.TypeAssetFinance,
		refdata.TypeCrowdfunding,
		refdata.TypeGovernmentGrant,
	}, intel.RecommendedTypes)
}

func TestAnalyzeHighReadinessEquityFloor(t *testing.T) {
	p := &profile.BusinessProfile{
		CompanyName:   "ScaleUp AI",
		Sector:        refdata.SectorTechnology,
		AnnualRevenue: 3_000_000,
		Employees:     40,
		Location:      refdata.RegionLondon,
		BusinessAge:   9,
		FundingAmount: 400_000,
		Financials: profile.Financials{
			ProfitMargin:   0.15,
			CashFlowMonths: 6,
			DebtToEquity:   0.5,
		},
	}

	intel := New().Analyze(p)
	require.NotNil(t, intel)
	assert.GreaterOrEqual(t, intel.FundingReadiness, 0.8)
	assert.Equal(t, []refdata.FundingType{
		refdata.TypeVentureCapital,
		refdata.TypeAngelInvestment,
		refdata.TypeBankLoan,
		refdata.TypeAssetFinance,
	}, intel.RecommendedTypes)
}

func TestAnalyzeNilProfileFallback(t *testing.T) {
	intel := New().Analyze(nil)
	require.NotNil(t, intel)
	assert.True(t, intel.Fallback)
	assert.Equal(t, refdata.RiskMedium, intel.RiskLevel)
	assert.Equal(t, refdata.StageUnknown, intel.Stage)
	assert.InDelta(t, 0.4, intel.FundingReadiness, 1e-9)
	assert.Contains(t, intel.MatchingTags, "fallback_analysis")
	assert.Contains(t, intel.RedFlags, "incomplete_data")
	assert.NotEmpty(t, intel.RecommendedTypes)
}

func TestAnalyzeUnknownSectorUsesDefaults(t *testing.T) {
	p := techProfile()
	p.Sector = "hospitality"
	p.Location = "narnia"

	intel := New().Analyze(p)
	require.NotNil(t, intel)
	assert.False(t, intel.Fallback)
	// Unknown sector and region fall back to mid-table defaults.
	assert.InDelta(t, 0.6, intel.SectorAttractiveness, 1e-9)
	assert.Contains(t, intel.MatchingTags, "hospitality_business")
}
