// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/live-tally/models"
)

// ErrUnknownCandidate is returned by Increment for a candidate that is not
// in the configured list.
var ErrUnknownCandidate = errors.New("unknown candidate")

// Store holds the per-candidate vote counts. The candidate list is fixed at
// construction; counts only ever increase. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	candidates []string
	counts     map[string]int
	total      int
}

// New creates a Store with every count at zero. The list must be non-empty
// and free of duplicates; violations are configuration errors and fatal to
// startup.
func New(candidates []string) (*Store, error) {
	if len(candidates) == 0 {
		return nil, errors.New("candidate list is empty")
	}

	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		if _, dup := counts[c]; dup {
			return nil, fmt.Errorf("duplicate candidate %q", c)
		}
		counts[c] = 0
	}

	return &Store{
		candidates: append([]string(nil), candidates...),
		counts:     counts,
	}, nil
}

// Candidates returns the configured candidate list in order.
func (s *Store) Candidates() []string {
	// Immutable after New; no lock needed.
	return append([]string(nil), s.candidates...)
}

// Valid reports whether candidate is in the configured list.
func (s *Store) Valid(candidate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.counts[candidate]
	return ok
}

// Increment adds one vote for candidate and returns the resulting snapshot
// and total. Concurrent increments never lose updates. Returns
// ErrUnknownCandidate without changing any count if candidate is not in the
// configured list.
func (s *Store) Increment(candidate string) ([]models.TallyEntry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counts[candidate]; !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCandidate, candidate)
	}

	s.counts[candidate]++
	s.total++
	return s.snapshotLocked(), s.total, nil
}

// Snapshot returns a consistent point-in-time view of the tally, ordered by
// the configured candidate order, plus the total number of votes cast.
func (s *Store) Snapshot() ([]models.TallyEntry, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), s.total
}

func (s *Store) snapshotLocked() []models.TallyEntry {
	entries := make([]models.TallyEntry, len(s.candidates))
	for i, c := range s.candidates {
		entries[i] = models.TallyEntry{Candidate: c, Votes: s.counts[c]}
	}
	return entries
}
