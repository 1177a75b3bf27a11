// Package store holds the in-memory datasets behind the dashboard: the raw
// team roster and the assessment/question collections. All state lives in
// process memory; uploads replace or merge it atomically.
package store

import (
	"sync"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/sirupsen/logrus"
)

// TeamStore holds the roster of raw team records. A new upload replaces the
// entire roster (no merge-by-key, unlike assessments), so callers must treat
// imports as destructive.
type TeamStore struct {
	mu      sync.RWMutex
	records []models.TeamRecord
	logger  *logrus.Logger
}

// NewTeamStore creates an empty team store.
func NewTeamStore(logger *logrus.Logger) *TeamStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &TeamStore{logger: logger}
}

// ReplaceAll swaps the whole roster for the given records. Missing numeric
// fields stay 0; missing name/platform/pillar strings are normalized to
// "Unknown" so downstream grouping never sees empty keys.
func (s *TeamStore) ReplaceAll(records []models.TeamRecord) {
	normalized := make([]models.TeamRecord, len(records))
	for i, r := range records {
		if r.Name == "" {
			r.Name = "Unknown"
		}
		if r.Platform == "" {
			r.Platform = "Unknown"
		}
		if r.Pillar == "" {
			r.Pillar = "Unknown"
		}
		normalized[i] = r
	}

	s.mu.Lock()
	prev := len(s.records)
	s.records = normalized
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"previous": prev,
		"loaded":   len(normalized),
	}).Info("team roster replaced")
}

// All returns a copy of the current roster.
func (s *TeamStore) All() []models.TeamRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TeamRecord(nil), s.records...)
}

// Len returns the roster size.
func (s *TeamStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Selector narrows the roster for one view. Quarter always matches exactly;
// Platform and Pillar accept the "All" sentinel. PlatformConstraint is the
// role-derived narrowing and applies on top of the Platform selector
// regardless of what the selector says (empty = unconstrained).
type Selector struct {
	Quarter            string
	Platform           string
	Pillar             string
	PlatformConstraint string
}

// Filter applies the selector conjunctively over records. It is a pure
// function so views can run it over any snapshot.
func Filter(records []models.TeamRecord, sel Selector) []models.TeamRecord {
	out := make([]models.TeamRecord, 0, len(records))
	for _, r := range records {
		if r.Quarter != sel.Quarter {
			continue
		}
		if sel.Platform != "" && sel.Platform != models.PlatformAll && r.Platform != sel.Platform {
			continue
		}
		if sel.Pillar != "" && sel.Pillar != models.PillarAll && r.Pillar != sel.Pillar {
			continue
		}
		if sel.PlatformConstraint != "" && r.Platform != sel.PlatformConstraint {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Filtered is a convenience wrapper running Filter over the live roster.
func (s *TeamStore) Filtered(sel Selector) []models.TeamRecord {
	return Filter(s.All(), sel)
}
