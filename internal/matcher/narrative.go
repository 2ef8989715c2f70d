package matcher

import (
	"fmt"
	"strings"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/money"
	"github.com/verityai/capital-recommender/internal/refdata"
	"github.com/verityai/capital-recommender/internal/researcher"
)

const (
	maxRequirements = 5
	maxNextSteps    = 4
)

// Creditworthiness under this triggers the credit-history requirement.
const strongCreditFloor = 0.7

// requirements lists what the applicant must show, most material first.
func requirements(src *researcher.EligibleSource, intel *analyzer.Intelligence) []string {
	var reqs []string
	if src.MinTradingYears > 0 {
		reqs = append(reqs, fmt.Sprintf("Minimum %g years trading history", src.MinTradingYears))
	}
	if src.MinAnnualRevenue > 0 {
		reqs = append(reqs, fmt.Sprintf("Minimum %s annual revenue", money.GBP(src.MinAnnualRevenue)))
	}
	if src.InnovationRequirement {
		reqs = append(reqs, "Innovation/R&D focus required")
	}
	if src.AssetRequirement != "" {
		reqs = append(reqs, "Asset backing required")
	}
	if intel.Creditworthiness < strongCreditFloor {
		reqs = append(reqs, "Strong credit history essential")
	}
	if len(reqs) > maxRequirements {
		reqs = reqs[:maxRequirements]
	}
	return reqs
}

// nextSteps is the preparation checklist for the funding family, ending
// with the contact step when the source publishes an email.
func nextSteps(src *researcher.EligibleSource) []string {
	var steps []string
	switch src.Type {
	case refdata.TypeBankLoan, refdata.TypeAssetFinance:
		steps = append(steps,
			"Prepare 3 years of audited accounts",
			"Gather recent bank statements",
			"Complete business plan summary",
		)
	case refdata.TypeVentureCapital, refdata.TypeAngelInvestment:
		steps = append(steps,
			"Prepare investor pitch deck",
			"Document growth strategy",
			"Prepare financial projections",
		)
	case refdata.TypeGovernmentGrant, refdata.TypeRegionalGrant:
		steps = append(steps,
			"Review eligibility criteria in detail",
			"Prepare innovation/project plan",
			"Complete online application",
		)
	}
	if src.Contact.Email != "" {
		steps = append(steps, fmt.Sprintf("Contact via %s", src.Contact.Email))
	}
	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

// reasoning concatenates the triggered strengths into one sentence.
func reasoning(b Breakdown, src *researcher.EligibleSource) string {
	var reasons []string
	if b.Compatibility >= 0.8 {
		reasons = append(reasons, "excellent sector and stage alignment")
	}
	if b.ApprovalProbability >= 0.7 {
		reasons = append(reasons, "high approval probability based on financial profile")
	}
	if b.CommercialValue >= 0.7 {
		reasons = append(reasons, "attractive commission structure")
	}
	if src.Appetite == refdata.AppetiteAggressive {
		reasons = append(reasons, "actively seeking new deals")
	}
	if src.Availability == refdata.StatusAcceptingApplications {
		reasons = append(reasons, "currently accepting applications")
	}
	if len(reasons) == 0 {
		return "Solid match across multiple criteria."
	}
	return fmt.Sprintf("Recommended due to %s.", strings.Join(reasons, ", "))
}
