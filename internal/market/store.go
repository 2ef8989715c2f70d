package market

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store holds the process-wide market snapshot. Requests read whatever
// snapshot is current when they start; Refresh swaps in a regenerated one.
type Store struct {
	mu   sync.RWMutex
	cond *Conditions
}

// NewStore builds a store seeded with the current baseline snapshot.
func NewStore() *Store {
	return &Store{cond: Current(time.Now())}
}

// Conditions returns the current market snapshot.
func (s *Store) Conditions() *Conditions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cond
}

// Refresh regenerates the market snapshot and returns it.
func (s *Store) Refresh() *Conditions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cond = Current(time.Now())
	zap.L().Info("market conditions refreshed", zap.Time("as_of", s.cond.LastUpdated))
	return s.cond
}
