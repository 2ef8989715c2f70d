package catalog

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verityai/capital-recommender/internal/refdata"
)

func TestBuiltInIsValid(t *testing.T) {
	sources := BuiltIn()
	require.Len(t, sources, 9)
	assert.NoError(t, Validate(sources))

	ids := make(map[string]bool)
	for _, s := range sources {
		ids[s.SourceID] = true
		assert.NotEmpty(t, s.Name, s.SourceID)
		assert.NotEmpty(t, s.Type, s.SourceID)
		assert.NotEmpty(t, s.ApprovalTimeline, s.SourceID)
	}
	assert.True(t, ids["barclays_business_loan"])
	assert.True(t, ids["scottish_enterprise"])
}

func TestSourceSectorAllowed(t *testing.T) {
	barclays := BuiltIn()[0]
	require.Equal(t, "barclays_business_loan", barclays.SourceID)
	assert.True(t, barclays.AllSectors())
	assert.True(t, barclays.SectorAllowed(refdata.SectorRetail))

	var lloyds Source
	for _, s := range BuiltIn() {
		if s.SourceID == "lloyds_commercial_finance" {
			lloyds = s
		}
	}
	assert.True(t, lloyds.SectorAllowed(refdata.SectorManufacturing))
	assert.False(t, lloyds.SectorAllowed(refdata.SectorRetail))
	assert.True(t, lloyds.SectorExcluded(refdata.SectorRetail))
	assert.False(t, lloyds.SectorAllowed(refdata.SectorHealthcare))
}

func TestAmountRangeInclusiveBounds(t *testing.T) {
	r := AmountRange{Min: 5_000, Max: 250_000}
	assert.True(t, r.Contains(5_000))
	assert.True(t, r.Contains(250_000))
	assert.True(t, r.Contains(100_000))
	assert.False(t, r.Contains(4_999))
	assert.False(t, r.Contains(250_001))
}

func TestRiskTolerance(t *testing.T) {
	cases := map[refdata.FundingType]refdata.RiskLevel{
		refdata.TypeBankLoan:        refdata.RiskLow,
		refdata.TypeAssetFinance:    refdata.RiskLow,
		refdata.TypeAngelInvestment: refdata.RiskHigh,
		refdata.TypeVentureCapital:  refdata.RiskHigh,
		refdata.TypeCrowdfunding:    refdata.RiskHigh,
		refdata.TypeGovernmentGrant: refdata.RiskMedium,
		refdata.TypeFamilyOffice:    refdata.RiskMedium,
		refdata.TypeRegionalGrant:   refdata.RiskMedium,
	}
	for ft, want := range cases {
		s := Source{Type: ft}
		assert.Equal(t, want, s.RiskTolerance(), ft)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	content := `
sources:
  - source_id: test_bank
    name: Test Bank
    type: bank_loan
    category: traditional_banking
    amount_range:
      min: 10000
      max: 100000
    sectors: ["all"]
    min_trading_years: 2
    approval_timeline: "2-4 weeks"
    broker_commission:
      min: 1.0
      max: 2.5
    availability_status: accepting_applications
    current_appetite: neutral
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	sources, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)

	s := sources[0]
	assert.Equal(t, "test_bank", s.SourceID)
	assert.Equal(t, refdata.TypeBankLoan, s.Type)
	assert.Equal(t, 10_000.0, s.Amount.Min)
	assert.Equal(t, 2.5, s.Commission.Max)
	assert.Equal(t, refdata.StatusAcceptingApplications, s.Availability)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	assert.Error(t, Validate(nil))

	dup := []Source{
		{SourceID: "a", Amount: AmountRange{Min: 1, Max: 2}},
		{SourceID: "a", Amount: AmountRange{Min: 1, Max: 2}},
	}
	assert.Error(t, Validate(dup))

	badAmount := []Source{{SourceID: "a", Amount: AmountRange{Min: 100, Max: 50}}}
	assert.Error(t, Validate(badAmount))

	badCommission := []Source{{
		SourceID:   "a",
		Amount:     AmountRange{Min: 1, Max: 2},
		Commission: CommissionRange{Min: 5, Max: 2},
	}}
	assert.Error(t, Validate(badCommission))

	badYears := []Source{{
		SourceID:        "a",
		Amount:          AmountRange{Min: 1, Max: 2},
		MinTradingYears: 5,
		MaxTradingYears: 2,
	}}
	assert.Error(t, Validate(badYears))
}

func TestStoreRefreshVersionsAndImmutability(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	st := NewStoreWithRand(BuiltIn(), rng)

	first := st.Snapshot()
	assert.Equal(t, 1, first.Version)

	firstAppetites := make(map[string]refdata.Appetite)
	for _, s := range first.Sources {
		firstAppetites[s.SourceID] = s.Appetite
	}

	second := st.Refresh()
	assert.Equal(t, 2, second.Version)
	assert.Same(t, second, st.Snapshot())

	// The earlier snapshot is untouched by the refresh.
	for _, s := range first.Sources {
		assert.Equal(t, firstAppetites[s.SourceID], s.Appetite)
	}
	for _, s := range second.Sources {
		assert.NotEmpty(t, s.LastUpdated)
	}

	// Mutating one snapshot's slices must not leak into the other.
	second.Sources[0].Sectors[0] = "mutated"
	assert.NotEqual(t, "mutated", first.Sources[0].Sectors[0])
}

func TestStoreRefreshDriftIsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := NewStoreWithRand(BuiltIn(), rng)

	snap := st.Snapshot()
	for i := 0; i < 20; i++ {
		snap = st.Refresh()
	}
	assert.Equal(t, 21, snap.Version)
	for _, s := range snap.Sources {
		assert.Contains(t, []refdata.Appetite{
			refdata.AppetiteAggressive,
			refdata.AppetiteNeutral,
			refdata.AppetiteSelective,
			refdata.AppetiteCautious,
		}, s.Appetite, s.SourceID)
	}
}

func TestSummarize(t *testing.T) {
	snap := NewStore(BuiltIn()).Snapshot()
	sum := snap.Summarize()

	assert.Equal(t, 9, sum.TotalSources)
	assert.Equal(t, 2, sum.ByCategory["government_funding"])
	assert.NotEmpty(t, sum.ByAvailability)
	assert.NotEmpty(t, sum.SectorPreferences)

	// Eight UK-wide sources plus one Scotland-only source.
	assert.Equal(t, 8, sum.UKWideSources)
	assert.Equal(t, 1, sum.RegionalSpecific["scotland"])

	require.NotEmpty(t, sum.TopCommission)
	assert.LessOrEqual(t, len(sum.TopCommission), 5)
	assert.NotEmpty(t, sum.AvgCommissionByType)
}
