// Package session holds per-session dashboard state in memory. Derived
// tables are isolated per session key and never shared globally; the store
// is the only mutable shared structure in the application and is guarded by
// a single mutex.
package session

import (
	"sync"

	"esgboard/domain/core"
	"esgboard/domain/training"
	"esgboard/domain/workforce"
)

// State is the working state of one user session: the normalized tables of
// each page plus the user-adjustable parameters that survive across
// requests. A new upload replaces the page's table; parameter changes never
// trigger re-normalization.
type State struct {
	// CompBen is the normalized employee table of the Comp&Ben page
	CompBen *workforce.Table
	// CompBenFingerprint identifies the upload CompBen was derived from
	CompBenFingerprint core.Fingerprint

	// Analyst is the employee table of the analyst page after the
	// contracts join
	Analyst *workforce.Table

	// Training holds the normalized training records
	Training []training.Record

	// Rates are the session's exchange-rate overrides on top of defaults
	Rates workforce.ExchangeRateTable

	// Raw exclusion texts are kept for form redisplay; the parsed sets are
	// derived on read so edits take effect immediately.
	ActiveExclusionText    string
	DepartureExclusionText string
}

// ActiveExclusions parses the active-employee exclusion list
func (s *State) ActiveExclusions() workforce.ExclusionSet {
	return workforce.ParseExclusionSet(s.ActiveExclusionText)
}

// DepartureExclusions parses the departures exclusion list. This set is
// independent of the active-employee one; the two are never conflated.
func (s *State) DepartureExclusions() workforce.ExclusionSet {
	return workforce.ParseExclusionSet(s.DepartureExclusionText)
}

// Store maps session keys to state. All methods are safe for concurrent
// use; each session has at most one writer at a time in practice, so the
// single mutex is not a bottleneck.
type Store struct {
	mu       sync.RWMutex
	sessions map[core.SessionKey]*State
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[core.SessionKey]*State)}
}

// Get returns the state for a key, or nil if the session is unknown
func (s *Store) Get(key core.SessionKey) *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[key]
}

// GetOrCreate returns the state for a key, creating it with session
// defaults on first use.
func (s *Store) GetOrCreate(key core.SessionKey) *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.sessions[key]; ok {
		return state
	}
	state := &State{Rates: workforce.DefaultExchangeRates()}
	s.sessions[key] = state
	return state
}

// Update runs fn against the state for a key under the store lock
func (s *Store) Update(key core.SessionKey, fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[key]
	if !ok {
		state = &State{Rates: workforce.DefaultExchangeRates()}
		s.sessions[key] = state
	}
	fn(state)
}
