package catalog

import (
	"sort"

	"github.com/verityai/capital-recommender/internal/refdata"
)

// CommissionOpportunity ranks a source by broker revenue potential.
type CommissionOpportunity struct {
	Source        string              `json:"source"`
	Type          refdata.FundingType `json:"type"`
	AvgCommission float64             `json:"avg_commission"`
	AmountMax     float64             `json:"amount_potential"`
}

// Summary is the market-intelligence view over one catalog snapshot.
type Summary struct {
	TotalSources        int                                    `json:"total_sources"`
	ByCategory          map[string]int                         `json:"by_category"`
	ByAvailability      map[refdata.AvailabilityStatus]int     `json:"by_availability"`
	SectorPreferences   map[refdata.FundingType][]string       `json:"sector_preferences"`
	UKWideSources       int                                    `json:"uk_wide_sources"`
	RegionalSpecific    map[string]int                         `json:"regional_specific"`
	TopCommission       []CommissionOpportunity                `json:"top_commission_sources"`
	AvgCommissionByType map[refdata.FundingType]float64        `json:"avg_commission_by_type"`
}

// topCommissionLimit caps the ranked commission list.
const topCommissionLimit = 5

// Summarize computes the broker-facing catalog summary for a snapshot.
func (s *Snapshot) Summarize() Summary {
	sum := Summary{
		TotalSources:        len(s.Sources),
		ByCategory:          make(map[string]int),
		ByAvailability:      make(map[refdata.AvailabilityStatus]int),
		SectorPreferences:   make(map[refdata.FundingType][]string),
		RegionalSpecific:    make(map[string]int),
		AvgCommissionByType: make(map[refdata.FundingType]float64),
	}

	prefSets := make(map[refdata.FundingType]map[string]bool)
	commissionSums := make(map[refdata.FundingType]float64)
	commissionCounts := make(map[refdata.FundingType]int)
	opportunities := make([]CommissionOpportunity, 0, len(s.Sources))

	for i := range s.Sources {
		src := &s.Sources[i]
		sum.ByCategory[src.Category]++
		sum.ByAvailability[src.Availability]++

		if len(src.GeographicRequirement) == 0 {
			sum.UKWideSources++
		} else {
			for _, region := range src.GeographicRequirement {
				sum.RegionalSpecific[region]++
			}
		}

		if !src.AllSectors() {
			set, ok := prefSets[src.Type]
			if !ok {
				set = make(map[string]bool)
				prefSets[src.Type] = set
			}
			for _, sec := range src.Sectors {
				set[sec] = true
			}
		}

		mean := src.Commission.Mean()
		commissionSums[src.Type] += mean
		commissionCounts[src.Type]++
		opportunities = append(opportunities, CommissionOpportunity{
			Source:        src.Name,
			Type:          src.Type,
			AvgCommission: mean,
			AmountMax:     src.Amount.Max,
		})
	}

	for t, set := range prefSets {
		secs := make([]string, 0, len(set))
		for sec := range set {
			secs = append(secs, sec)
		}
		sort.Strings(secs)
		sum.SectorPreferences[t] = secs
	}

	for t, total := range commissionSums {
		sum.AvgCommissionByType[t] = total / float64(commissionCounts[t])
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].AvgCommission*opportunities[i].AmountMax >
			opportunities[j].AvgCommission*opportunities[j].AmountMax
	})
	if len(opportunities) > topCommissionLimit {
		opportunities = opportunities[:topCommissionLimit]
	}
	sum.TopCommission = opportunities

	return sum
}
