package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/market"
	"github.com/verityai/capital-recommender/internal/matcher"
	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
	"github.com/verityai/capital-recommender/internal/researcher"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(catalog.NewStore(catalog.BuiltIn()), market.NewStore(), matcher.DefaultConfig())
	require.NoError(t, err)
	return e
}

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func techRequest() profile.Request {
	return profile.Request{
		CompanyName:   "TechFlow Solutions",
		Sector:        "technology",
		AnnualRevenue: f64(450_000),
		Employees:     iptr(12),
		Location:      "london",
		BusinessAge:   f64(3),
		FundingAmount: f64(250_000),
	}
}

func TestRecommendTechBusiness(t *testing.T) {
	resp := newTestEngine(t).Recommend(techRequest())
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "techflow_solutions", resp.BusinessID)
	assert.NotEmpty(t, resp.RequestID)
	require.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 5)
	assert.Greater(t, resp.TotalProcessed, 0)

	assert.Contains(t,
		[]ConfidenceLevel{ConfidenceMedium, ConfidenceHigh, ConfidenceVeryHigh},
		resp.ConfidenceLevel)

	types := make(map[refdata.FundingType]bool)
	for i, rec := range resp.Recommendations {
		assert.Equal(t, i+1, rec.Rank)
		assert.GreaterOrEqual(t, rec.MatchScore, 0.6)
		types[rec.Type] = true
	}
	core := types[refdata.TypeBankLoan] || types[refdata.TypeAssetFinance] || types[refdata.TypeAngelInvestment]
	assert.True(t, core, "expected a bank loan, asset finance, or angel match, got %v", types)
}

func TestRecommendNoEligibleSources(t *testing.T) {
	// A manufacturer outside London cannot reach the low overall risk that
	// secured lenders demand, and no equity source lists plain
	// manufacturing, so the catalog yields nothing.
	req := profile.Request{
		CompanyName:   "Precision Parts Ltd",
		Sector:        "manufacturing",
		AnnualRevenue: f64(1_200_000),
		Employees:     iptr(35),
		Location:      "north_west",
		BusinessAge:   f64(8),
		FundingAmount: f64(500_000),
	}

	resp := newTestEngine(t).Recommend(req)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, ConfidenceNone, resp.ConfidenceLevel)
	// A successful envelope never carries errors, even with no matches.
	assert.Empty(t, resp.Errors)
}

func TestRecommendMissingFundingAmount(t *testing.T) {
	req := techRequest()
	req.FundingAmount = nil

	resp := newTestEngine(t).Recommend(req)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 0, resp.TotalProcessed)
	assert.Equal(t, ConfidenceNone, resp.ConfidenceLevel)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "Invalid business profile data provided", resp.Errors[0])
}

func TestRecommendInternalFailureEnvelope(t *testing.T) {
	m, err := matcher.New(matcher.DefaultConfig())
	require.NoError(t, err)

	// A nil catalog store makes the pipeline fail after validation; the
	// recovery path must still hand back a well-formed envelope.
	e := &Engine{
		analyzer:   analyzer.New(),
		researcher: researcher.New(),
		matcher:    m,
		catalog:    nil,
		market:     market.NewStore(),
	}

	resp := e.Recommend(techRequest())
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, ConfidenceLow, resp.ConfidenceLevel)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "Insufficient information to generate recommendations", resp.Errors[0])
}

func TestRecommendExcessiveAmountStillSafe(t *testing.T) {
	req := techRequest()
	req.FundingAmount = f64(4_500_000) // ten times revenue

	resp := newTestEngine(t).Recommend(req)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	// The request is flagged, not rejected; any surviving matches stay ranked.
	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			resp.Recommendations[i-1].MatchScore,
			resp.Recommendations[i].MatchScore)
	}
}

func TestRecommendExcludedSectorNeverAppears(t *testing.T) {
	req := profile.Request{
		CompanyName:   "High Street Retail Ltd",
		Sector:        "retail",
		AnnualRevenue: f64(900_000),
		Employees:     iptr(20),
		Location:      "london",
		BusinessAge:   f64(5),
		FundingAmount: f64(100_000),
	}

	resp := newTestEngine(t).Recommend(req)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	// Lloyds excludes retail regardless of amount, age, or revenue.
	for _, rec := range resp.Recommendations {
		assert.NotContains(t, rec.FundingSource, "Lloyds")
	}
}

func TestRecommendIdempotent(t *testing.T) {
	e := newTestEngine(t)
	first := e.Recommend(techRequest())
	second := e.Recommend(techRequest())

	require.Equal(t, len(first.Recommendations), len(second.Recommendations))
	for i := range first.Recommendations {
		a, b := first.Recommendations[i], second.Recommendations[i]
		assert.Equal(t, a.FundingSource, b.FundingSource)
		assert.Equal(t, a.MatchScore, b.MatchScore)
		assert.Equal(t, a.ScoreBreakdown, b.ScoreBreakdown)
	}
	assert.Equal(t, first.ConfidenceLevel, second.ConfidenceLevel)
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestConfidenceBands(t *testing.T) {
	mk := func(scores ...float64) []matcher.Match {
		out := make([]matcher.Match, len(scores))
		for i, s := range scores {
			out[i] = matcher.Match{OverallScore: s}
		}
		return out
	}

	assert.Equal(t, ConfidenceNone, confidence(nil))
	assert.Equal(t, ConfidenceVeryHigh, confidence(mk(0.9, 0.85)))
	assert.Equal(t, ConfidenceHigh, confidence(mk(0.8, 0.75)))
	assert.Equal(t, ConfidenceMedium, confidence(mk(0.7, 0.65)))
	assert.Equal(t, ConfidenceLow, confidence(mk(0.6)))
}
