// Package refdata holds the static UK reference tables the recommendation
// pipeline reads: sector risk/growth metadata, regional funding availability,
// SME size thresholds, and the closed enumerations shared across packages.
// All tables are read-only; lookups for unknown keys return permissive
// mid-table defaults rather than errors.
package refdata

// Sector is a UK business sector key.
type Sector string

const (
	SectorTechnology          Sector = "technology"
	SectorManufacturing       Sector = "manufacturing"
	SectorRetail              Sector = "retail"
	SectorProfessionalService Sector = "professional_services"
	SectorHealthcare          Sector = "healthcare"
	SectorConstruction        Sector = "construction"
	SectorFinance             Sector = "finance"
	SectorEducation           Sector = "education"
)

// RiskLevel is a three-point risk rating.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// GrowthPotential rates a sector's growth outlook.
type GrowthPotential string

const (
	GrowthLow    GrowthPotential = "low"
	GrowthMedium GrowthPotential = "medium"
	GrowthHigh   GrowthPotential = "high"
)

// SectorInfo is the per-sector reference record.
type SectorInfo struct {
	SICCodes []string
	Risk     RiskLevel
	Growth   GrowthPotential
}

var sectors = map[Sector]SectorInfo{
	SectorTechnology:          {SICCodes: []string{"62", "63"}, Risk: RiskMedium, Growth: GrowthHigh},
	SectorManufacturing:       {SICCodes: []string{"10-33"}, Risk: RiskMedium, Growth: GrowthMedium},
	SectorRetail:              {SICCodes: []string{"45-47"}, Risk: RiskHigh, Growth: GrowthMedium},
	SectorProfessionalService: {SICCodes: []string{"69-75"}, Risk: RiskLow, Growth: GrowthMedium},
	SectorHealthcare:          {SICCodes: []string{"86-88"}, Risk: RiskLow, Growth: GrowthHigh},
	SectorConstruction:        {SICCodes: []string{"41-43"}, Risk: RiskHigh, Growth: GrowthMedium},
	SectorFinance:             {SICCodes: []string{"64-66"}, Risk: RiskMedium, Growth: GrowthMedium},
	SectorEducation:           {SICCodes: []string{"85"}, Risk: RiskLow, Growth: GrowthLow},
}

// SectorData returns the reference record for a sector. Unknown sectors get
// a medium-risk, medium-growth default.
func SectorData(s Sector) SectorInfo {
	if info, ok := sectors[s]; ok {
		return info
	}
	return SectorInfo{Risk: RiskMedium, Growth: GrowthMedium}
}

// KnownSector reports whether the sector appears in the reference table.
func KnownSector(s Sector) bool {
	_, ok := sectors[s]
	return ok
}

// Region is a UK region key.
type Region string

const (
	RegionLondon          Region = "london"
	RegionSouthEast       Region = "south_east"
	RegionNorthWest       Region = "north_west"
	RegionScotland        Region = "scotland"
	RegionYorkshire       Region = "yorkshire"
	RegionWestMidlands    Region = "west_midlands"
	RegionWales           Region = "wales"
	RegionNorthernIreland Region = "northern_ireland"
)

// BusinessDensity rates how concentrated business activity is in a region.
type BusinessDensity string

const (
	DensityVeryHigh BusinessDensity = "very_high"
	DensityHigh     BusinessDensity = "high"
	DensityMedium   BusinessDensity = "medium"
	DensityLow      BusinessDensity = "low"
)

// FundingAvailability rates regional access to funding.
type FundingAvailability string

const (
	AvailabilityExcellent FundingAvailability = "excellent"
	AvailabilityGood      FundingAvailability = "good"
	AvailabilityFair      FundingAvailability = "fair"
	AvailabilityLimited   FundingAvailability = "limited"
)

// RegionInfo is the per-region reference record.
type RegionInfo struct {
	Population          int
	BusinessDensity     BusinessDensity
	FundingAvailability FundingAvailability
}

var regions = map[Region]RegionInfo{
	RegionLondon:          {Population: 9500000, BusinessDensity: DensityVeryHigh, FundingAvailability: AvailabilityExcellent},
	RegionSouthEast:       {Population: 9270000, BusinessDensity: DensityHigh, FundingAvailability: AvailabilityGood},
	RegionNorthWest:       {Population: 7420000, BusinessDensity: DensityMedium, FundingAvailability: AvailabilityGood},
	RegionScotland:        {Population: 5480000, BusinessDensity: DensityMedium, FundingAvailability: AvailabilityGood},
	RegionYorkshire:       {Population: 5500000, BusinessDensity: DensityMedium, FundingAvailability: AvailabilityFair},
	RegionWestMidlands:    {Population: 6000000, BusinessDensity: DensityMedium, FundingAvailability: AvailabilityFair},
	RegionWales:           {Population: 3130000, BusinessDensity: DensityLow, FundingAvailability: AvailabilityFair},
	RegionNorthernIreland: {Population: 1900000, BusinessDensity: DensityLow, FundingAvailability: AvailabilityLimited},
}

// RegionData returns the reference record for a region. Unknown regions get
// a medium-density, fair-availability default.
func RegionData(r Region) RegionInfo {
	if info, ok := regions[r]; ok {
		return info
	}
	return RegionInfo{BusinessDensity: DensityMedium, FundingAvailability: AvailabilityFair}
}

// GeographicRisk maps regional business density to a risk rating: denser
// regions carry lower geographic risk.
func GeographicRisk(d BusinessDensity) RiskLevel {
	switch d {
	case DensityVeryHigh, DensityHigh:
		return RiskLow
	case DensityLow:
		return RiskHigh
	default:
		return RiskMedium
	}
}

// RiskScore converts a risk rating to its 1-3 numeric scale.
func RiskScore(r RiskLevel) int {
	switch r {
	case RiskLow:
		return 1
	case RiskHigh:
		return 3
	default:
		return 2
	}
}

// RiskFromMean converts an averaged 1-3 risk score back to a rating.
func RiskFromMean(mean float64) RiskLevel {
	switch {
	case mean <= 1.5:
		return RiskLow
	case mean <= 2.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}
