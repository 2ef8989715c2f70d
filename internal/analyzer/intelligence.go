package analyzer

import "github.com/verityai/capital-recommender/internal/refdata"

// AmountJustification categorizes how a funding request compares to revenue.
type AmountJustification string

const (
	JustificationConservative AmountJustification = "conservative"
	JustificationReasonable   AmountJustification = "reasonable"
	JustificationOptimistic   AmountJustification = "optimistic"
	JustificationExcessive    AmountJustification = "excessive"
	JustificationUnknown      AmountJustification = "unknown"
)

// GrowthTrajectory categorizes a business's growth direction.
type GrowthTrajectory string

const (
	TrajectoryAccelerating GrowthTrajectory = "accelerating"
	TrajectoryStable       GrowthTrajectory = "stable"
	TrajectoryDeclining    GrowthTrajectory = "declining"
)

// Indicators are the funding-specific sub-assessments of an analysis.
type Indicators struct {
	AmountJustification AmountJustification `json:"amount_justification"`
	RepaymentCapacity   float64             `json:"repayment_capacity"`
	AssetBacking        float64             `json:"asset_backing"`
	ManagementStrength  float64             `json:"management_strength"`
	DebtToEquity        float64             `json:"debt_to_equity"`
}

// Intelligence is the derived business-intelligence record. Produced once
// per request by the Analyzer; read-only downstream.
type Intelligence struct {
	RiskLevel            refdata.RiskLevel     `json:"risk_level"`
	Stage                refdata.BusinessStage `json:"stage"`
	Creditworthiness     float64               `json:"creditworthiness"`
	GrowthTrajectory     GrowthTrajectory      `json:"growth_trajectory"`
	FundingReadiness     float64               `json:"funding_readiness"`
	SectorAttractiveness float64               `json:"sector_attractiveness"`
	Indicators           Indicators            `json:"funding_indicators"`
	MatchingTags         []string              `json:"matching_tags"`
	RedFlags             []string              `json:"red_flags"`
	RecommendedTypes     []refdata.FundingType `json:"recommended_funding_types"`

	// Fallback marks the documented degraded record returned when analysis
	// could not complete.
	Fallback bool `json:"fallback,omitempty"`
}
