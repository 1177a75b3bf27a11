package access

import (
	"testing"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/platformetrics/maturityboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cioFixture() []models.CIO {
	return []models.CIO{
		{ID: "cio-1", Name: "Alex Mercer", Platform: "Commercial"},
		{ID: "cio-2", Name: "Priya Shah", Platform: "Consumer"},
	}
}

func TestVisiblePlatformsByRole(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	all := models.Platforms

	tests := []struct {
		name     string
		user     models.UserProfile
		expected []string
	}{
		{"superuser sees all", models.UserProfile{Role: models.RoleSuperuser}, all},
		{"admin sees all", models.UserProfile{Role: models.RoleAdmin}, all},
		{"reviewer sees all", models.UserProfile{Role: models.RoleReviewer}, all},
		{"supervisor sees cio platform", models.UserProfile{Role: models.RoleSupervisor, CIOID: "cio-1"}, []string{"Commercial"}},
		{"lead sees own platform", models.UserProfile{Role: models.RoleUser, PlatformID: "Digital"}, []string{"Digital"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.VisiblePlatforms(tt.user, all))
		})
	}
}

func TestSupervisorUnresolvedCIOFailsOpen(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	user := models.UserProfile{Role: models.RoleSupervisor, CIOID: "cio-missing"}
	assert.Empty(t, r.PlatformConstraint(user))
	assert.Equal(t, models.Platforms, r.VisiblePlatforms(user, models.Platforms))
}

func TestSupervisorFilterNeverLeaksForeignPlatform(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	supervisor := models.UserProfile{Role: models.RoleSupervisor, CIOID: "cio-1"}

	var records []models.TeamRecord
	for _, q := range []string{"Q3 2025", "Q4 2025"} {
		for _, platform := range models.Platforms {
			for _, pillar := range models.Pillars {
				records = append(records, models.TeamRecord{
					Name: "t", Platform: platform, Pillar: pillar, Quarter: q,
				})
			}
		}
	}

	for _, quarter := range []string{"Q3 2025", "Q4 2025"} {
		for _, platform := range []string{models.PlatformAll, "Consumer", "Commercial"} {
			for _, pillar := range append([]string{models.PillarAll}, models.Pillars...) {
				got := store.Filter(records, store.Selector{
					Quarter:            quarter,
					Platform:           platform,
					Pillar:             pillar,
					PlatformConstraint: r.PlatformConstraint(supervisor),
				})
				for _, rec := range got {
					require.Equal(t, "Commercial", rec.Platform)
				}
			}
		}
	}
}

func TestCanSubmit(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	lead := models.UserProfile{Role: models.RoleUser, PlatformID: "Consumer"}

	assert.True(t, r.CanSubmit(lead, "Consumer"))
	assert.False(t, r.CanSubmit(lead, "Commercial"))
	assert.False(t, r.CanSubmit(models.UserProfile{Role: models.RoleAdmin}, "Consumer"))
	assert.False(t, r.CanSubmit(models.UserProfile{Role: models.RoleReviewer}, "Consumer"))
	assert.False(t, r.CanSubmit(models.UserProfile{Role: models.RoleSuperuser}, "Consumer"))
}

func TestCanReview(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	submitted := models.Assessment{Platform: "Commercial", Quarter: "Q4 2025", Status: models.StatusSubmitted}
	draft := models.Assessment{Platform: "Commercial", Quarter: "Q4 2025", Status: models.StatusDraft}

	reviewer := models.UserProfile{Role: models.RoleReviewer}
	assert.True(t, r.CanReview(reviewer, submitted))
	assert.False(t, r.CanReview(reviewer, draft))

	peer := models.UserProfile{Role: models.RoleUser, PlatformID: "Consumer"}
	assert.True(t, r.CanReview(peer, submitted))

	owner := models.UserProfile{Role: models.RoleUser, PlatformID: "Commercial"}
	assert.False(t, r.CanReview(owner, submitted), "self-review is forbidden")

	assert.False(t, r.CanReview(models.UserProfile{Role: models.RoleSuperuser}, submitted))
	assert.False(t, r.CanReview(models.UserProfile{Role: models.RoleAdmin}, submitted))
	assert.False(t, r.CanReview(models.UserProfile{Role: models.RoleSupervisor, CIOID: "cio-1"}, submitted))
}

func TestReviewQueueExcludesOwnPlatformRegardlessOfStatus(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	lead := models.UserProfile{Role: models.RoleUser, PlatformID: "Consumer"}

	assessments := []models.Assessment{
		{Platform: "Consumer", Quarter: "Q4 2025", Status: models.StatusSubmitted},
		{Platform: "Commercial", Quarter: "Q4 2025", Status: models.StatusSubmitted},
		{Platform: "Digital", Quarter: "Q4 2025", Status: models.StatusDraft},
		{Platform: "Enterprise", Quarter: "Q4 2025", Status: models.StatusReviewed},
	}

	queue := r.ReviewQueue(lead, assessments)
	require.Len(t, queue, 1)
	assert.Equal(t, "Commercial", queue[0].Platform)

	reviewerQueue := r.ReviewQueue(models.UserProfile{Role: models.RoleReviewer}, assessments)
	require.Len(t, reviewerQueue, 2)
}

func TestQuestionAndDataManagementAreAdminOnly(t *testing.T) {
	r := NewResolver(cioFixture(), nil)
	for _, role := range []models.Role{models.RoleSupervisor, models.RoleUser, models.RoleReviewer, models.RoleSuperuser} {
		user := models.UserProfile{Role: role}
		assert.False(t, r.CanEditQuestions(user), role)
		assert.False(t, r.CanManageData(user), role)
	}
	admin := models.UserProfile{Role: models.RoleAdmin}
	assert.True(t, r.CanEditQuestions(admin))
	assert.True(t, r.CanManageData(admin))
}

func TestSectionsPerRole(t *testing.T) {
	r := NewResolver(cioFixture(), nil)

	assert.Equal(t, []string{"dashboard", "assessments", "questions", "data", "settings"},
		r.Sections(models.UserProfile{Role: models.RoleAdmin}))
	assert.Equal(t, []string{"dashboard", "self-assessment", "reviews"},
		r.Sections(models.UserProfile{Role: models.RoleUser}))
	assert.Equal(t, []string{"dashboard", "assessments", "reviews"},
		r.Sections(models.UserProfile{Role: models.RoleReviewer}))
	assert.Equal(t, []string{"dashboard", "assessments"},
		r.Sections(models.UserProfile{Role: models.RoleSupervisor}))
	assert.Equal(t, []string{"dashboard"}, r.Sections(models.UserProfile{}))
}

func TestCanSeeFollowsConstraint(t *testing.T) {
	r := NewResolver(cioFixture(), nil)

	supervisor := models.UserProfile{Role: models.RoleSupervisor, CIOID: "cio-2"}
	assert.True(t, r.CanSee(supervisor, "Consumer"))
	assert.False(t, r.CanSee(supervisor, "Commercial"))

	admin := models.UserProfile{Role: models.RoleAdmin}
	for _, p := range models.Platforms {
		assert.True(t, r.CanSee(admin, p))
	}
}
