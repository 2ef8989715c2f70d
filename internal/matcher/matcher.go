package matcher

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/money"
	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
	"github.com/verityai/capital-recommender/internal/researcher"
)

// Success probability blend.
const (
	successApprovalWeight      = 0.7
	successCompatibilityWeight = 0.3
)

// Match is one ranked funding recommendation.
type Match struct {
	SourceID           string              `json:"source_id"`
	SourceName         string              `json:"source_name"`
	FundingType        refdata.FundingType `json:"funding_type"`
	OverallScore       float64             `json:"overall_score"`
	Breakdown          Breakdown           `json:"score_breakdown"`
	SuccessProbability float64             `json:"success_probability"`
	AmountRange        string              `json:"amount_range"`
	Timeline           string              `json:"timeline"`
	BrokerCommission   string              `json:"broker_commission"`
	Requirements       []string            `json:"requirements"`
	Contact            catalog.Contact     `json:"contact"`
	NextSteps          []string            `json:"next_steps"`
	Reasoning          string              `json:"reasoning"`
}

// Match scores every eligible source, drops those under the threshold,
// then ranks and diversifies the rest. An internal failure yields the
// single generic fallback match.
func (m *Matcher) Match(
	intel *analyzer.Intelligence,
	sources []researcher.EligibleSource,
	p *profile.BusinessProfile,
) (matches []Match) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("recommendation matching failed, using fallback match",
				zap.Any("panic", r),
			)
			matches = fallbackMatches()
		}
	}()

	var qualified []Match
	for i := range sources {
		src := &sources[i]
		overall, breakdown := m.score(intel, src, p)
		if overall < m.cfg.MinScore {
			continue
		}
		qualified = append(qualified, m.buildMatch(src, overall, breakdown, intel))
	}

	matches = m.rankAndDiversify(qualified)
	if len(matches) > m.cfg.MaxRecommendations {
		matches = matches[:m.cfg.MaxRecommendations]
	}

	zap.L().Info("recommendation matching complete",
		zap.Int("scored", len(sources)),
		zap.Int("qualified", len(qualified)),
		zap.Int("recommended", len(matches)),
	)
	return matches
}

func (m *Matcher) buildMatch(src *researcher.EligibleSource, overall float64, b Breakdown, intel *analyzer.Intelligence) Match {
	success := b.ApprovalProbability*successApprovalWeight + b.Compatibility*successCompatibilityWeight
	return Match{
		SourceID:     src.SourceID,
		SourceName:   src.Name,
		FundingType:  src.Type,
		OverallScore: round3(overall),
		Breakdown: Breakdown{
			Compatibility:       round3(b.Compatibility),
			ApprovalProbability: round3(b.ApprovalProbability),
			CommercialValue:     round3(b.CommercialValue),
			StrategicFit:        round3(b.StrategicFit),
		},
		SuccessProbability: round3(success),
		AmountRange:        money.Range(src.Amount.Min, src.Amount.Max),
		Timeline:           src.AdjustedTimeline,
		BrokerCommission:   money.Percent(src.Commission.Min, src.Commission.Max),
		Requirements:       requirements(src, intel),
		Contact:            src.Contact,
		NextSteps:          nextSteps(src),
		Reasoning:          reasoning(b, src),
	}
}

// rankAndDiversify sorts by score descending, then admits greedily with at
// most DiversityCap entries per funding type. Sources skipped for type
// saturation are dropped, not reordered.
func (m *Matcher) rankAndDiversify(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})

	typeCounts := make(map[refdata.FundingType]int)
	out := matches[:0]
	for _, match := range matches {
		if typeCounts[match.FundingType] >= m.cfg.DiversityCap {
			continue
		}
		typeCounts[match.FundingType]++
		out = append(out, match)
	}
	return out
}

// fallbackMatches is the degraded single-entry result: a generic bank loan
// scored at the recommendation threshold.
func fallbackMatches() []Match {
	return []Match{{
		SourceID:     "fallback_generic",
		SourceName:   "UK Business Finance",
		FundingType:  refdata.TypeBankLoan,
		OverallScore: 0.6,
		Breakdown: Breakdown{
			Compatibility:       0.6,
			ApprovalProbability: 0.6,
			CommercialValue:     0.6,
			StrategicFit:        0.6,
		},
		SuccessProbability: 0.6,
		AmountRange:        "Contact for details",
		Timeline:           "4-8 weeks",
		BrokerCommission:   "2-4%",
		Requirements:       []string{"Business plan", "Financial statements"},
		Contact:            catalog.Contact{Email: "info@ukbusinessfinance.co.uk"},
		NextSteps:          []string{"Contact for initial assessment"},
		Reasoning:          "Generic business lending option.",
	}}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
