package store

import (
	"testing"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterFixture() []models.TeamRecord {
	// 4 platforms x 6 pillars x 6 quarters, one team per combination.
	quarters := []string{"Q3 2024", "Q4 2024", "Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025"}
	var records []models.TeamRecord
	for _, q := range quarters {
		for _, platform := range models.Platforms {
			for _, pillar := range models.Pillars {
				records = append(records, models.TeamRecord{
					Name:        "Team " + platform + " " + pillar,
					Platform:    platform,
					Pillar:      pillar,
					Quarter:     q,
					Maturity:    5,
					Performance: 6,
					Agility:     7,
					Stability:   80,
				})
			}
		}
	}
	return records
}

func TestFilterByQuarterOnly(t *testing.T) {
	records := rosterFixture()
	got := Filter(records, Selector{Quarter: "Q4 2025", Platform: models.PlatformAll, Pillar: models.PillarAll})
	assert.Len(t, got, 24)
}

func TestFilterByPlatform(t *testing.T) {
	records := rosterFixture()
	got := Filter(records, Selector{Quarter: "Q4 2025", Platform: "Consumer", Pillar: models.PillarAll})
	require.Len(t, got, 6)
	for _, r := range got {
		assert.Equal(t, "Consumer", r.Platform)
		assert.Equal(t, "Q4 2025", r.Quarter)
	}
}

func TestFilterByPillar(t *testing.T) {
	records := rosterFixture()
	got := Filter(records, Selector{Quarter: "Q1 2025", Platform: models.PlatformAll, Pillar: "Engineering Excellence"})
	require.Len(t, got, 4)
	for _, r := range got {
		assert.Equal(t, "Engineering Excellence", r.Pillar)
	}
}

func TestFilterConstraintOverridesSelector(t *testing.T) {
	records := rosterFixture()
	// A supervisor pinned to Commercial never sees other platforms, whatever
	// the platform selector says.
	for _, selector := range []string{models.PlatformAll, "Consumer", "Commercial"} {
		for _, pillar := range []string{models.PillarAll, "Product Strategy"} {
			got := Filter(records, Selector{
				Quarter:            "Q2 2025",
				Platform:           selector,
				Pillar:             pillar,
				PlatformConstraint: "Commercial",
			})
			for _, r := range got {
				assert.Equal(t, "Commercial", r.Platform,
					"selector %q pillar %q leaked a foreign platform", selector, pillar)
			}
		}
	}
}

func TestFilterConjunctive(t *testing.T) {
	records := rosterFixture()
	got := Filter(records, Selector{Quarter: "Q3 2025", Platform: "Digital", Pillar: "People & Culture"})
	require.Len(t, got, 1)
	assert.Equal(t, "Digital", got[0].Platform)
	assert.Equal(t, "People & Culture", got[0].Pillar)
}

func TestFilterEmptySelectorsMatchNothingStale(t *testing.T) {
	records := rosterFixture()
	got := Filter(records, Selector{Quarter: "Q4 1999", Platform: models.PlatformAll, Pillar: models.PillarAll})
	assert.Empty(t, got)
}

func TestReplaceAllIsWholesale(t *testing.T) {
	s := NewTeamStore(nil)
	s.ReplaceAll(rosterFixture())
	require.Equal(t, 144, s.Len())

	s.ReplaceAll([]models.TeamRecord{{Name: "Solo", Platform: "Consumer", Pillar: "Product Strategy", Quarter: "Q4 2025"}})
	assert.Equal(t, 1, s.Len())
}

func TestReplaceAllNormalizesMissingStrings(t *testing.T) {
	s := NewTeamStore(nil)
	s.ReplaceAll([]models.TeamRecord{{Quarter: "Q4 2025"}})
	got := s.All()
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Name)
	assert.Equal(t, "Unknown", got[0].Platform)
	assert.Equal(t, "Unknown", got[0].Pillar)
	assert.Zero(t, got[0].Maturity)
	assert.Zero(t, got[0].Stability)
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewTeamStore(nil)
	s.ReplaceAll(rosterFixture()[:2])
	snapshot := s.All()
	snapshot[0].Platform = "Tampered"
	assert.NotEqual(t, "Tampered", s.All()[0].Platform)
}
