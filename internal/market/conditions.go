// Package market models the process-wide UK funding-market snapshot: base
// rates, per-category lending appetite, sector temperature, and the
// timeline adjustments they imply. The snapshot is regenerated only on an
// explicit refresh, never mid-request.
package market

import (
	"time"

	"github.com/verityai/capital-recommender/internal/refdata"
)

// InterestRates summarizes the rate environment.
type InterestRates struct {
	BaseRate float64 `json:"bank_base_rate"`
	Trend    string  `json:"trend"`
	Outlook  string  `json:"outlook"`
}

// SectorPreferences buckets sectors by current funding temperature.
type SectorPreferences struct {
	Hot     []string `json:"hot"`
	Neutral []string `json:"neutral"`
	Cold    []string `json:"cold"`
}

// EconomicIndicators carries the macro backdrop.
type EconomicIndicators struct {
	GDPGrowth          float64 `json:"gdp_growth"`
	Inflation          float64 `json:"inflation"`
	Unemployment       float64 `json:"unemployment"`
	BusinessConfidence float64 `json:"business_confidence"`
}

// Conditions is one immutable market snapshot. LendingAppetite is keyed by
// the leading segment of a catalog category ("traditional_banking" →
// "traditional").
type Conditions struct {
	InterestRates      InterestRates                 `json:"interest_rates"`
	LendingAppetite    map[string]refdata.Appetite   `json:"lending_appetite"`
	SectorPreferences  SectorPreferences             `json:"sector_preferences"`
	EconomicIndicators EconomicIndicators            `json:"economic_indicators"`
	LastUpdated        time.Time                     `json:"last_updated"`
}

// Current builds the baseline UK market snapshot.
func Current(now time.Time) *Conditions {
	return &Conditions{
		InterestRates: InterestRates{BaseRate: 5.25, Trend: "stable", Outlook: "cautious"},
		LendingAppetite: map[string]refdata.Appetite{
			"traditional": refdata.AppetiteSelective,
			"alternative": refdata.AppetiteNeutral,
			"equity":      refdata.AppetiteCautious,
			"government":  refdata.AppetiteSupportive,
			"private":     refdata.AppetiteSelective,
		},
		SectorPreferences: SectorPreferences{
			Hot:     []string{"technology", "clean_energy", "healthcare"},
			Neutral: []string{"manufacturing", "professional_services"},
			Cold:    []string{"retail", "hospitality", "construction"},
		},
		EconomicIndicators: EconomicIndicators{
			GDPGrowth:          0.8,
			Inflation:          3.2,
			Unemployment:       4.1,
			BusinessConfidence: 6.2,
		},
		LastUpdated: now,
	}
}

// CategoryAppetite returns the market lending appetite for a catalog
// category, defaulting to neutral when the category has no entry.
func (c *Conditions) CategoryAppetite(category string) refdata.Appetite {
	key := category
	for i := 0; i < len(category); i++ {
		if category[i] == '_' {
			key = category[:i]
			break
		}
	}
	if a, ok := c.LendingAppetite[key]; ok {
		return a
	}
	return refdata.AppetiteNeutral
}

// SectorStatus is a sector-temperature rating for a source's sector list.
type SectorStatus string

const (
	StatusHot     SectorStatus = "hot"
	StatusNeutral SectorStatus = "neutral"
	StatusCold    SectorStatus = "cold"
)

// SourceSectorStatus rates a source by its sector list: hot if any sector is
// hot, else cold if any is cold, else neutral.
func (c *Conditions) SourceSectorStatus(sectors []string) SectorStatus {
	for _, s := range sectors {
		for _, hot := range c.SectorPreferences.Hot {
			if s == hot {
				return StatusHot
			}
		}
	}
	for _, s := range sectors {
		for _, cold := range c.SectorPreferences.Cold {
			if s == cold {
				return StatusCold
			}
		}
	}
	return StatusNeutral
}
