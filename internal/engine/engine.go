// Package engine orchestrates one recommendation request end to end:
// validate, analyze, research, match, then assemble the response envelope.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/analyzer"
	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/market"
	"github.com/verityai/capital-recommender/internal/matcher"
	"github.com/verityai/capital-recommender/internal/profile"
	"github.com/verityai/capital-recommender/internal/refdata"
	"github.com/verityai/capital-recommender/internal/researcher"
)

// ConfidenceLevel summarizes how strong the recommendation set is.
type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceNone     ConfidenceLevel = "none"
)

// User-facing error messages.
const (
	msgInvalidInput     = "Invalid business profile data provided"
	msgInsufficientData = "Insufficient information to generate recommendations"
)

// Recommendation is one entry of the response, ranked from 1.
type Recommendation struct {
	Rank               int                 `json:"rank"`
	FundingSource      string              `json:"funding_source"`
	Type               refdata.FundingType `json:"type"`
	MatchScore         float64             `json:"match_score"`
	SuccessProbability float64             `json:"success_probability"`
	ScoreBreakdown     matcher.Breakdown   `json:"score_breakdown"`
	AmountRange        string              `json:"amount_range"`
	Timeline           string              `json:"timeline"`
	BrokerCommission   string              `json:"broker_commission"`
	Requirements       []string            `json:"requirements"`
	ContactInfo        catalog.Contact     `json:"contact_info"`
	NextSteps          []string            `json:"next_steps"`
	Reasoning          string              `json:"reasoning"`
}

// Response is the full recommendation envelope.
type Response struct {
	BusinessID      string           `json:"business_id"`
	RequestID       string           `json:"request_id"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalProcessed  int              `json:"total_processed"`
	ExecutionTime   float64          `json:"execution_time"`
	ConfidenceLevel ConfidenceLevel  `json:"confidence_level"`
	Success         bool             `json:"success"`
	Errors          []string         `json:"errors,omitempty"`
}

// Engine wires the pipeline components together. Safe for concurrent use:
// each request reads one immutable catalog snapshot and one market
// conditions value.
type Engine struct {
	analyzer   *analyzer.Analyzer
	researcher *researcher.Researcher
	matcher    *matcher.Matcher
	catalog    *catalog.Store
	market     *market.Store
}

// New builds an engine over the given stores.
func New(cat *catalog.Store, mkt *market.Store, cfg matcher.Config) (*Engine, error) {
	m, err := matcher.New(cfg)
	if err != nil {
		return nil, eris.Wrap(err, "engine: build matcher")
	}
	return &Engine{
		analyzer:   analyzer.New(),
		researcher: researcher.New(),
		matcher:    m,
		catalog:    cat,
		market:     mkt,
	}, nil
}

// Recommend processes one raw request and always returns a well-formed
// envelope; validation failures and internal errors become unsuccessful
// responses, never panics.
func (e *Engine) Recommend(req profile.Request) (resp *Response) {
	start := time.Now()
	requestID := uuid.NewString()
	businessID := profile.SlugID(req.CompanyName)

	log := zap.L().With(
		zap.String("request_id", requestID),
		zap.String("business_id", businessID),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("recommendation pipeline panicked", zap.Any("panic", r))
			resp = errorResponse(businessID, requestID, start, msgInsufficientData, ConfidenceLow)
		}
	}()

	log.Info("processing recommendation request")

	p, err := profile.ParseRequest(req)
	if err != nil {
		log.Warn("request rejected", zap.Error(err))
		msg := msgInvalidInput
		if !eris.Is(err, profile.ErrInvalidInput) {
			msg = msgInsufficientData
		}
		return errorResponse(businessID, requestID, start, msg, ConfidenceNone)
	}

	intel := e.analyzer.Analyze(p)
	snap := e.catalog.Snapshot()
	cond := e.market.Conditions()

	sources := e.researcher.Research(p, intel, snap, cond)
	matches := e.matcher.Match(intel, sources, p)

	// An empty recommendation list is a valid successful outcome; the
	// envelope carries errors only when success is false.
	resp = &Response{
		BusinessID:      p.BusinessID(),
		RequestID:       requestID,
		Recommendations: buildRecommendations(matches),
		TotalProcessed:  len(sources),
		ExecutionTime:   roundSeconds(time.Since(start)),
		ConfidenceLevel: confidence(matches),
		Success:         true,
	}

	log.Info("recommendation request complete",
		zap.Int("sources", len(sources)),
		zap.Int("recommendations", len(matches)),
		zap.String("confidence", string(resp.ConfidenceLevel)),
	)
	return resp
}

func buildRecommendations(matches []matcher.Match) []Recommendation {
	recs := make([]Recommendation, len(matches))
	for i, m := range matches {
		recs[i] = Recommendation{
			Rank:               i + 1,
			FundingSource:      m.SourceName,
			Type:               m.FundingType,
			MatchScore:         m.OverallScore,
			SuccessProbability: m.SuccessProbability,
			ScoreBreakdown:     m.Breakdown,
			AmountRange:        m.AmountRange,
			Timeline:           m.Timeline,
			BrokerCommission:   m.BrokerCommission,
			Requirements:       m.Requirements,
			ContactInfo:        m.Contact,
			NextSteps:          m.NextSteps,
			Reasoning:          m.Reasoning,
		}
	}
	return recs
}

// confidence grades the mean match score of the final list.
func confidence(matches []matcher.Match) ConfidenceLevel {
	if len(matches) == 0 {
		return ConfidenceNone
	}
	var sum float64
	for _, m := range matches {
		sum += m.OverallScore
	}
	mean := sum / float64(len(matches))
	switch {
	case mean >= 0.85:
		return ConfidenceVeryHigh
	case mean >= 0.75:
		return ConfidenceHigh
	case mean >= 0.65:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// errorResponse builds an unsuccessful envelope. Validation rejections carry
// confidence none; the recovery path reports low, since the pipeline got far
// enough to start scoring before failing.
func errorResponse(businessID, requestID string, start time.Time, msg string, conf ConfidenceLevel) *Response {
	return &Response{
		BusinessID:      businessID,
		RequestID:       requestID,
		Recommendations: []Recommendation{},
		TotalProcessed:  0,
		ExecutionTime:   roundSeconds(time.Since(start)),
		ConfidenceLevel: conf,
		Success:         false,
		Errors:          []string{msg},
	}
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
