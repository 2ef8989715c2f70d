// Package profile defines the normalized funding-applicant record and the
// validation that turns a raw request into one.
package profile

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/verityai/capital-recommender/internal/refdata"
)

// Defaults applied when optional request fields are absent.
const (
	DefaultBusinessAge    = 1.0
	DefaultFundingPurpose = "expansion"
	DefaultTimeline       = "3_months"
	DefaultProfitMargin   = 0.10
	DefaultCashFlowMonths = 2.0
	DefaultDebtToEquity   = 1.0
)

// ErrInvalidInput marks validation failures on the raw request.
var ErrInvalidInput = eris.New("invalid business profile data provided")

// Financials are the optional financial indicators of an applicant.
type Financials struct {
	ProfitMargin   float64
	CashFlowMonths float64
	DebtToEquity   float64
}

// BusinessProfile is the immutable, normalized representation of a funding
// applicant. Construct via ParseRequest; one profile lives for exactly one
// recommendation request.
type BusinessProfile struct {
	CompanyName    string
	Sector         refdata.Sector
	AnnualRevenue  float64
	Employees      int
	Location       refdata.Region
	BusinessAge    float64
	FundingAmount  float64
	FundingPurpose string
	Timeline       string
	Financials     Financials
}

// RequestFinancials mirrors the optional financials block of a raw request.
type RequestFinancials struct {
	ProfitMargin   *float64 `json:"profit_margin"`
	CashFlowMonths *float64 `json:"cash_flow_months"`
	DebtToEquity   *float64 `json:"debt_to_equity"`
}

// Request is the raw recommendation request as received from a caller.
// Pointer fields distinguish absent from zero.
type Request struct {
	CompanyName    string             `json:"company_name"`
	Sector         string             `json:"sector"`
	AnnualRevenue  *float64           `json:"annual_revenue"`
	Employees      *int               `json:"employees"`
	Location       string             `json:"location"`
	BusinessAge    *float64           `json:"business_age"`
	FundingAmount  *float64           `json:"funding_amount"`
	FundingPurpose string             `json:"funding_purpose"`
	Timeline       string             `json:"timeline"`
	Financials     *RequestFinancials `json:"financials"`
}

// ParseRequest validates a raw request and builds the normalized profile.
// Missing required fields and out-of-range values produce an
// ErrInvalidInput-wrapped error naming every offending field.
func ParseRequest(req Request) (*BusinessProfile, error) {
	var missing []string
	if strings.TrimSpace(req.CompanyName) == "" {
		missing = append(missing, "company_name")
	}
	if strings.TrimSpace(req.Sector) == "" {
		missing = append(missing, "sector")
	}
	if req.AnnualRevenue == nil {
		missing = append(missing, "annual_revenue")
	}
	if req.Employees == nil {
		missing = append(missing, "employees")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}
	if req.FundingAmount == nil {
		missing = append(missing, "funding_amount")
	}
	if len(missing) > 0 {
		return nil, eris.Wrapf(ErrInvalidInput, "profile: missing required fields: %s", strings.Join(missing, ", "))
	}

	var invalid []string
	if *req.AnnualRevenue < 0 {
		invalid = append(invalid, "annual_revenue must be non-negative")
	}
	if *req.Employees < 0 {
		invalid = append(invalid, "employees must be non-negative")
	}
	if *req.FundingAmount <= 0 {
		invalid = append(invalid, "funding_amount must be positive")
	}
	if req.BusinessAge != nil && *req.BusinessAge < 0 {
		invalid = append(invalid, "business_age must be non-negative")
	}
	if len(invalid) > 0 {
		return nil, eris.Wrapf(ErrInvalidInput, "profile: %s", strings.Join(invalid, "; "))
	}

	p := &BusinessProfile{
		CompanyName:    strings.TrimSpace(req.CompanyName),
		Sector:         refdata.Sector(strings.ToLower(strings.TrimSpace(req.Sector))),
		AnnualRevenue:  *req.AnnualRevenue,
		Employees:      *req.Employees,
		Location:       refdata.Region(strings.ToLower(strings.TrimSpace(req.Location))),
		BusinessAge:    DefaultBusinessAge,
		FundingAmount:  *req.FundingAmount,
		FundingPurpose: DefaultFundingPurpose,
		Timeline:       DefaultTimeline,
		Financials: Financials{
			ProfitMargin:   DefaultProfitMargin,
			CashFlowMonths: DefaultCashFlowMonths,
			DebtToEquity:   DefaultDebtToEquity,
		},
	}

	if req.BusinessAge != nil {
		p.BusinessAge = *req.BusinessAge
	}
	if req.FundingPurpose != "" {
		p.FundingPurpose = req.FundingPurpose
	}
	if req.Timeline != "" {
		p.Timeline = req.Timeline
	}
	if req.Financials != nil {
		if req.Financials.ProfitMargin != nil {
			p.Financials.ProfitMargin = *req.Financials.ProfitMargin
		}
		if req.Financials.CashFlowMonths != nil {
			p.Financials.CashFlowMonths = *req.Financials.CashFlowMonths
		}
		if req.Financials.DebtToEquity != nil {
			p.Financials.DebtToEquity = *req.Financials.DebtToEquity
		}
	}

	return p, nil
}

// BusinessID derives the envelope business identifier from the company
// name: lowercased, spaces replaced with underscores.
func (p *BusinessProfile) BusinessID() string {
	return SlugID(p.CompanyName)
}

// SlugID slugs an arbitrary company name, falling back to "unknown".
func SlugID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
