package store

import (
	"testing"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionFixture() []models.AssessmentQuestion {
	return []models.AssessmentQuestion{
		{ID: "q-1", Pillar: "Engineering Excellence", Question: "Is ownership clear?",
			DimensionMetric: models.MetricMaturity, SubMetric: "Clarity"},
		{ID: "q-2", Pillar: "Product Strategy", Question: "Do leads set direction?",
			DimensionMetric: models.MetricMaturity, SubMetric: "Leadership"},
	}
}

func TestUpsertReplacesByPlatformQuarterKey(t *testing.T) {
	s := NewAssessmentStore(nil, nil)

	first := models.Assessment{
		ID: "a-1", Platform: "Consumer", Quarter: "Q4 2025",
		Status:  models.StatusSubmitted,
		Answers: []models.AssessmentAnswer{{QuestionID: "q-1", Score: 2}},
	}
	second := models.Assessment{
		ID: "a-2", Platform: "Consumer", Quarter: "Q4 2025",
		Status:  models.StatusReviewed,
		Answers: []models.AssessmentAnswer{{QuestionID: "q-1", Score: 5}},
	}
	s.Upsert(first)
	s.Upsert(second)

	all := s.Assessments()
	require.Len(t, all, 1)
	assert.Equal(t, "a-2", all[0].ID)
	assert.Equal(t, models.StatusReviewed, all[0].Status)
	assert.Equal(t, 5, all[0].Answers[0].Score)
}

func TestUpsertKeepsDistinctKeysApart(t *testing.T) {
	s := NewAssessmentStore(nil, nil)
	s.Upsert(models.Assessment{Platform: "Consumer", Quarter: "Q4 2025", Status: models.StatusSubmitted})
	s.Upsert(models.Assessment{Platform: "Consumer", Quarter: "Q3 2025", Status: models.StatusSubmitted})
	s.Upsert(models.Assessment{Platform: "Digital", Quarter: "Q4 2025", Status: models.StatusSubmitted})
	assert.Len(t, s.Assessments(), 3)
}

func TestScoredFiltersDraftsAndPlatform(t *testing.T) {
	s := NewAssessmentStore(nil, nil)
	s.Upsert(models.Assessment{Platform: "Consumer", Quarter: "Q4 2025", Status: models.StatusDraft})
	s.Upsert(models.Assessment{Platform: "Commercial", Quarter: "Q4 2025", Status: models.StatusSubmitted})
	s.Upsert(models.Assessment{Platform: "Digital", Quarter: "Q4 2025", Status: models.StatusReviewed})
	s.Upsert(models.Assessment{Platform: "Enterprise", Quarter: "Q3 2025", Status: models.StatusSubmitted})

	all := s.Scored("Q4 2025", models.PlatformAll)
	assert.Len(t, all, 2)

	one := s.Scored("Q4 2025", "Digital")
	require.Len(t, one, 1)
	assert.Equal(t, "Digital", one[0].Platform)

	assert.Empty(t, s.Scored("Q4 2025", "Consumer"), "draft must not count")
}

func TestMarkReviewed(t *testing.T) {
	s := NewAssessmentStore(nil, nil)
	s.Upsert(models.Assessment{Platform: "Consumer", Quarter: "Q4 2025", Status: models.StatusSubmitted})

	require.NoError(t, s.MarkReviewed("Consumer", "Q4 2025", "dana", "2025-12-01"))
	a, ok := s.Get("Consumer", "Q4 2025")
	require.True(t, ok)
	assert.Equal(t, models.StatusReviewed, a.Status)
	assert.Equal(t, "dana", a.ReviewedBy)

	// Already reviewed: second review attempt fails.
	assert.Error(t, s.MarkReviewed("Consumer", "Q4 2025", "erin", "2025-12-02"))
	// Unknown key.
	assert.Error(t, s.MarkReviewed("Consumer", "Q1 2026", "erin", "2025-12-02"))
}

func TestPublishQuestionsSnapshotsDraft(t *testing.T) {
	s := NewAssessmentStore(questionFixture(), nil)
	assert.False(t, s.QuestionsPublished())
	assert.Empty(t, s.PublishedQuestions())

	s.PublishQuestions()
	assert.True(t, s.QuestionsPublished())
	assert.Len(t, s.PublishedQuestions(), 2)
}

func TestDraftEditDoesNotTouchPublishedSnapshot(t *testing.T) {
	s := NewAssessmentStore(questionFixture(), nil)
	s.PublishQuestions()

	s.EditQuestions(func(draft []models.AssessmentQuestion) []models.AssessmentQuestion {
		draft[0].Question = "Rewritten after publish"
		return draft
	})

	published := s.PublishedQuestions()
	require.Len(t, published, 2)
	assert.Equal(t, "Is ownership clear?", published[0].Question,
		"publish must be a structural copy, not a live reference")
	assert.Equal(t, "Rewritten after publish", s.DraftQuestions()[0].Question)
}

func TestEditAlwaysMarksDirtyEvenWhenIdentical(t *testing.T) {
	s := NewAssessmentStore(questionFixture(), nil)
	s.PublishQuestions()
	require.True(t, s.QuestionsPublished())

	// No-op mutator: intent drives the flag, not structural diffing.
	s.EditQuestions(func(draft []models.AssessmentQuestion) []models.AssessmentQuestion {
		return draft
	})
	assert.False(t, s.QuestionsPublished())

	s.PublishQuestions()
	assert.True(t, s.QuestionsPublished())
}
