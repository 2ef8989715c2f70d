package refdata

// CompanySize is the UK SME size band.
type CompanySize string

const (
	SizeMicro  CompanySize = "micro"
	SizeSmall  CompanySize = "small"
	SizeMedium CompanySize = "medium"
	SizeLarge  CompanySize = "large"
)

// UK SME thresholds (Companies Act 2006 bands). A band matches only when
// both the headcount and revenue conditions hold; the first matching band
// wins.
const (
	microMaxEmployees  = 9
	microMaxRevenue    = 632_000
	smallMaxEmployees  = 49
	smallMaxRevenue    = 10_200_000
	mediumMaxEmployees = 249
	mediumMaxRevenue   = 50_000_000
)

// ClassifyCompanySize buckets a business by headcount and annual revenue.
func ClassifyCompanySize(employees int, annualRevenue float64) CompanySize {
	switch {
	case employees <= microMaxEmployees && annualRevenue <= microMaxRevenue:
		return SizeMicro
	case employees <= smallMaxEmployees && annualRevenue <= smallMaxRevenue:
		return SizeSmall
	case employees <= mediumMaxEmployees && annualRevenue <= mediumMaxRevenue:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// BusinessStage is the development stage of a business.
type BusinessStage string

const (
	StageStartup BusinessStage = "startup"
	StageGrowth  BusinessStage = "growth"
	StageMature  BusinessStage = "mature"
	// StageRecovery marks turnaround situations. It is never derived from
	// age alone, so the analyzer does not produce it; stage-fit tables still
	// carry it for externally supplied intelligence.
	StageRecovery BusinessStage = "recovery"
	StageUnknown  BusinessStage = "unknown"
)

// FundingType is a funding-source archetype key.
type FundingType string

const (
	TypeBankLoan        FundingType = "bank_loan"
	TypeAssetFinance    FundingType = "asset_finance"
	TypeAngelInvestment FundingType = "angel_investment"
	TypeVentureCapital  FundingType = "venture_capital"
	TypeCrowdfunding    FundingType = "crowdfunding"
	TypeGovernmentGrant FundingType = "government_grant"
	TypeFamilyOffice    FundingType = "family_office"
	TypeRegionalGrant   FundingType = "regional_grant"
)

// EquityType reports whether the funding type takes an equity stake.
func EquityType(t FundingType) bool {
	switch t {
	case TypeAngelInvestment, TypeVentureCapital, TypeFamilyOffice:
		return true
	default:
		return false
	}
}

// DebtType reports whether the funding type is a repayable debt product.
func DebtType(t FundingType) bool {
	return t == TypeBankLoan || t == TypeAssetFinance
}

// fundingTypeInfo is the archetype record for a funding type.
type fundingTypeInfo struct {
	TypicalRange     string
	ApprovalTimeline string
	CommissionBand   string
}

var fundingTypes = map[FundingType]fundingTypeInfo{
	TypeBankLoan:        {TypicalRange: "£5k-£250k", ApprovalTimeline: "2-6 weeks", CommissionBand: "1-3%"},
	TypeAssetFinance:    {TypicalRange: "£10k-£2m", ApprovalTimeline: "1-3 weeks", CommissionBand: "2-5%"},
	TypeAngelInvestment: {TypicalRange: "£25k-£500k", ApprovalTimeline: "4-12 weeks", CommissionBand: "3-7%"},
	TypeVentureCapital:  {TypicalRange: "£250k-£10m", ApprovalTimeline: "8-24 weeks", CommissionBand: "2-5%"},
	TypeCrowdfunding:    {TypicalRange: "£10k-£1m", ApprovalTimeline: "2-8 weeks", CommissionBand: "3-8%"},
	TypeGovernmentGrant: {TypicalRange: "£5k-£500k", ApprovalTimeline: "6-16 weeks", CommissionBand: "5-15%"},
	TypeFamilyOffice:    {TypicalRange: "£100k-£5m", ApprovalTimeline: "4-16 weeks", CommissionBand: "1-4%"},
	TypeRegionalGrant:   {TypicalRange: "£50k-£2m", ApprovalTimeline: "8-12 weeks", CommissionBand: "2-6%"},
}

// fundingTypeData returns the archetype record for a funding type.
func fundingTypeData(t FundingType) (fundingTypeInfo, bool) {
	info, ok := fundingTypes[t]
	return info, ok
}

// Appetite is a funding source's current willingness to originate deals.
type Appetite string

const (
	AppetiteAggressive Appetite = "aggressive"
	AppetiteNeutral    Appetite = "neutral"
	AppetiteSelective  Appetite = "selective"
	AppetiteCautious   Appetite = "cautious"
	// AppetiteSupportive appears only in market-level lending appetite
	// (government programmes); catalog sources never carry it.
	AppetiteSupportive Appetite = "supportive"
)

// AvailabilityStatus is a catalog source's application pipeline state.
type AvailabilityStatus string

const (
	StatusAcceptingApplications AvailabilityStatus = "accepting_applications"
	StatusSelective             AvailabilityStatus = "selective"
	StatusSeasonalRounds        AvailabilityStatus = "seasonal_rounds"
	StatusRelationshipBased     AvailabilityStatus = "relationship_based"
	StatusLimitedCapacity       AvailabilityStatus = "limited_capacity"
	StatusUnknown               AvailabilityStatus = "unknown"
)
