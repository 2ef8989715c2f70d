package catalog

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verityai/capital-recommender/internal/refdata"
)

// driftChance is the per-source probability that a refresh re-rolls the
// source's appetite.
const driftChance = 0.1

var driftAppetites = []refdata.Appetite{
	refdata.AppetiteAggressive,
	refdata.AppetiteNeutral,
	refdata.AppetiteSelective,
	refdata.AppetiteCautious,
}

// Snapshot is one immutable version of the catalog. Requests bind to a
// snapshot for their whole execution; refreshes produce new versions instead
// of mutating sources in place.
type Snapshot struct {
	Version int       `json:"version"`
	TakenAt time.Time `json:"taken_at"`
	Sources []Source  `json:"sources"`
}

// Store holds the current catalog snapshot and swaps in new versions on
// refresh. Reads never block behind a refresh for longer than the pointer
// swap.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
	rng  *rand.Rand
}

// NewStore builds a store whose first snapshot holds the given sources.
func NewStore(sources []Source) *Store {
	return newStore(sources, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewStoreWithRand is NewStore with a caller-supplied random source, for
// deterministic refresh behavior in tests.
func NewStoreWithRand(sources []Source, rng *rand.Rand) *Store {
	return newStore(sources, rng)
}

func newStore(sources []Source, rng *rand.Rand) *Store {
	return &Store{
		snap: &Snapshot{
			Version: 1,
			TakenAt: time.Now(),
			Sources: cloneSources(sources),
		},
		rng: rng,
	}
}

// Snapshot returns the current catalog version.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// Refresh builds a new catalog version with drifted source appetites and
// swaps it in. In-flight requests holding the previous snapshot are
// unaffected. Returns the new snapshot.
func (st *Store) Refresh() *Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	next := &Snapshot{
		Version: st.snap.Version + 1,
		TakenAt: now,
		Sources: cloneSources(st.snap.Sources),
	}

	drifted := 0
	for i := range next.Sources {
		if st.rng.Float64() < driftChance {
			next.Sources[i].Appetite = driftAppetites[st.rng.Intn(len(driftAppetites))]
			drifted++
		}
		next.Sources[i].LastUpdated = now.Format("2006-01-02")
	}

	st.snap = next
	zap.L().Info("catalog refreshed",
		zap.Int("version", next.Version),
		zap.Int("sources", len(next.Sources)),
		zap.Int("appetite_drift", drifted),
	)
	return next
}

// cloneSources deep-copies the slice-valued fields so snapshot versions
// never alias each other.
func cloneSources(sources []Source) []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	for i := range out {
		out[i].Sectors = append([]string(nil), out[i].Sectors...)
		out[i].ExcludedSectors = append([]string(nil), out[i].ExcludedSectors...)
		out[i].GeographicRequirement = append([]string(nil), out[i].GeographicRequirement...)
		out[i].SuccessFactors = append([]string(nil), out[i].SuccessFactors...)
		if out[i].InterestRate != nil {
			r := *out[i].InterestRate
			out[i].InterestRate = &r
		}
		if out[i].EquityRange != nil {
			r := *out[i].EquityRange
			out[i].EquityRange = &r
		}
	}
	return out
}
