// Package matcher scores eligible funding sources against business
// intelligence on four weighted dimensions and produces the ranked,
// diversified recommendation list.
package matcher

import (
	"math"

	"github.com/rotisserie/eris"
)

// Weights distributes the overall score across the four dimensions. The
// weights must sum to 1.
type Weights struct {
	Compatibility       float64
	ApprovalProbability float64
	CommercialValue     float64
	StrategicFit        float64
}

// DefaultWeights is the production scoring distribution.
func DefaultWeights() Weights {
	return Weights{
		Compatibility:       0.40,
		ApprovalProbability: 0.35,
		CommercialValue:     0.15,
		StrategicFit:        0.10,
	}
}

const weightSumTolerance = 1e-9

// Validate rejects weight sets that do not sum to 1.
func (w Weights) Validate() error {
	sum := w.Compatibility + w.ApprovalProbability + w.CommercialValue + w.StrategicFit
	if math.Abs(sum-1.0) > weightSumTolerance {
		return eris.Errorf("matcher: scoring weights sum to %v, want 1.0", sum)
	}
	if w.Compatibility < 0 || w.ApprovalProbability < 0 || w.CommercialValue < 0 || w.StrategicFit < 0 {
		return eris.New("matcher: scoring weights must be non-negative")
	}
	return nil
}

// Config tunes match selection.
type Config struct {
	Weights Weights

	// MinScore is the overall-score floor below which a source is not
	// recommended at all.
	MinScore float64
	// MaxRecommendations caps the final list length.
	MaxRecommendations int
	// DiversityCap limits how many recommendations may share a funding
	// type.
	DiversityCap int
}

// DefaultConfig mirrors the production thresholds.
func DefaultConfig() Config {
	return Config{
		Weights:            DefaultWeights(),
		MinScore:           0.6,
		MaxRecommendations: 5,
		DiversityCap:       2,
	}
}

// Matcher generates recommendations. Construct via New; stateless after
// construction.
type Matcher struct {
	cfg Config
}

// New validates the configuration and builds a Matcher.
func New(cfg Config) (*Matcher, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	if cfg.MinScore < 0 || cfg.MinScore > 1 {
		return nil, eris.Errorf("matcher: min score %v outside [0,1]", cfg.MinScore)
	}
	if cfg.MaxRecommendations <= 0 {
		return nil, eris.New("matcher: max recommendations must be positive")
	}
	if cfg.DiversityCap <= 0 {
		return nil, eris.New("matcher: diversity cap must be positive")
	}
	return &Matcher{cfg: cfg}, nil
}
