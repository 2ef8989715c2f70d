package profile

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verityai/capital-recommender/internal/refdata"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

func fullRequest() Request {
	return Request{
		CompanyName:   "TechFlow Solutions",
		Sector:        "Technology",
		AnnualRevenue: f64(450000),
		Employees:     iptr(12),
		Location:      "London",
		FundingAmount: f64(250000),
	}
}

func TestParseRequestAppliesDefaults(t *testing.T) {
	p, err := ParseRequest(fullRequest())
	require.NoError(t, err)

	assert.Equal(t, "TechFlow Solutions", p.CompanyName)
	assert.Equal(t, refdata.SectorTechnology, p.Sector)
	assert.Equal(t, refdata.RegionLondon, p.Location)
	assert.InDelta(t, DefaultBusinessAge, p.BusinessAge, 1e-9)
	assert.Equal(t, DefaultFundingPurpose, p.FundingPurpose)
	assert.Equal(t, DefaultTimeline, p.Timeline)
	assert.InDelta(t, DefaultProfitMargin, p.Financials.ProfitMargin, 1e-9)
	assert.InDelta(t, DefaultCashFlowMonths, p.Financials.CashFlowMonths, 1e-9)
	assert.InDelta(t, DefaultDebtToEquity, p.Financials.DebtToEquity, 1e-9)
}

func TestParseRequestExplicitValuesWin(t *testing.T) {
	req := fullRequest()
	req.BusinessAge = f64(3)
	req.FundingPurpose = "working_capital"
	req.Timeline = "6_months"
	req.Financials = &RequestFinancials{
		ProfitMargin:   f64(0.18),
		CashFlowMonths: f64(5),
		DebtToEquity:   f64(0.4),
	}

	p, err := ParseRequest(req)
	require.NoError(t, err)

	assert.InDelta(t, 3, p.BusinessAge, 1e-9)
	assert.Equal(t, "working_capital", p.FundingPurpose)
	assert.Equal(t, "6_months", p.Timeline)
	assert.InDelta(t, 0.18, p.Financials.ProfitMargin, 1e-9)
	assert.InDelta(t, 5, p.Financials.CashFlowMonths, 1e-9)
	assert.InDelta(t, 0.4, p.Financials.DebtToEquity, 1e-9)
}

func TestParseRequestPartialFinancials(t *testing.T) {
	req := fullRequest()
	req.Financials = &RequestFinancials{ProfitMargin: f64(0.25)}

	p, err := ParseRequest(req)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, p.Financials.ProfitMargin, 1e-9)
	assert.InDelta(t, DefaultCashFlowMonths, p.Financials.CashFlowMonths, 1e-9)
	assert.InDelta(t, DefaultDebtToEquity, p.Financials.DebtToEquity, 1e-9)
}

func TestParseRequestMissingFields(t *testing.T) {
	_, err := ParseRequest(Request{CompanyName: "Lonely Ltd"})
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "sector")
	assert.Contains(t, err.Error(), "annual_revenue")
	assert.Contains(t, err.Error(), "employees")
	assert.Contains(t, err.Error(), "location")
	assert.Contains(t, err.Error(), "funding_amount")
	assert.NotContains(t, err.Error(), "company_name")
}

func TestParseRequestBlankStringsAreMissing(t *testing.T) {
	req := fullRequest()
	req.CompanyName = "   "
	req.Location = ""

	_, err := ParseRequest(req)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "company_name")
	assert.Contains(t, err.Error(), "location")
}

func TestParseRequestRangeValidation(t *testing.T) {
	req := fullRequest()
	req.AnnualRevenue = f64(-1)
	req.Employees = iptr(-2)
	req.FundingAmount = f64(0)
	req.BusinessAge = f64(-0.5)

	_, err := ParseRequest(req)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "annual_revenue must be non-negative")
	assert.Contains(t, err.Error(), "employees must be non-negative")
	assert.Contains(t, err.Error(), "funding_amount must be positive")
	assert.Contains(t, err.Error(), "business_age must be non-negative")
}

func TestParseRequestNormalizesCase(t *testing.T) {
	req := fullRequest()
	req.Sector = "  MANUFACTURING "
	req.Location = "North_West"

	p, err := ParseRequest(req)
	require.NoError(t, err)
	assert.Equal(t, refdata.SectorManufacturing, p.Sector)
	assert.Equal(t, refdata.RegionNorthWest, p.Location)
}

func TestSlugID(t *testing.T) {
	assert.Equal(t, "techflow_solutions", SlugID("TechFlow Solutions"))
	assert.Equal(t, "acme", SlugID("  Acme  "))
	assert.Equal(t, "unknown", SlugID(""))
	assert.Equal(t, "unknown", SlugID("   "))
}

func TestBusinessID(t *testing.T) {
	p, err := ParseRequest(fullRequest())
	require.NoError(t, err)
	assert.Equal(t, "techflow_solutions", p.BusinessID())
}
