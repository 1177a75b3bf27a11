package dimension

import (
	"testing"

	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maturityQuestions() []models.AssessmentQuestion {
	return []models.AssessmentQuestion{
		{ID: "q1", DimensionMetric: models.MetricMaturity, SubMetric: "Clarity"},
		{ID: "q2", DimensionMetric: models.MetricMaturity, SubMetric: "Clarity"},
		{ID: "q3", DimensionMetric: models.MetricMaturity, SubMetric: "Leadership"},
		// A question for a different metric must not bleed in.
		{ID: "q4", DimensionMetric: models.MetricAgility, SubMetric: "Autonomy"},
	}
}

func TestDeriveFromAssessmentAnswers(t *testing.T) {
	in := Inputs{
		Metric: models.MetricMaturity,
		Assessments: []models.Assessment{{
			Platform: "Consumer", Quarter: "Q4 2025", Status: models.StatusSubmitted,
			Answers: []models.AssessmentAnswer{
				{QuestionID: "q1", Score: 5},
				{QuestionID: "q2", Score: 3},
				{QuestionID: "q3", Score: 0}, // unanswered
			},
		}},
		Questions: maturityQuestions(),
		Fallback:  DefaultFallback(models.MetricMaturity),
		TeamCount: 6,
		Method:    aggregate.MethodSimple,
	}

	dims := Derive(in)
	require.Len(t, dims, 2)

	clarity := dims[0]
	assert.Equal(t, "Clarity", clarity.Name)
	assert.Equal(t, []float64{10, 6}, clarity.Scores, "raw 1-5 scores scale x2 onto the chart range")
	assert.InDelta(t, 8, clarity.Average, 1e-9)

	leadership := dims[1]
	assert.Equal(t, "Leadership", leadership.Name)
	assert.Empty(t, leadership.Scores)
	assert.Zero(t, leadership.Average, "no answered questions means zero, not NaN")

	// Two sub-metric groups -> equal 50/50 split.
	assert.InDelta(t, 50, clarity.Weight, 1e-9)
	assert.InDelta(t, 50, leadership.Weight, 1e-9)
}

func TestDeriveEqualWeightSplitRounds(t *testing.T) {
	questions := []models.AssessmentQuestion{
		{ID: "a", DimensionMetric: models.MetricPerformance, SubMetric: "Delivery"},
		{ID: "b", DimensionMetric: models.MetricPerformance, SubMetric: "Quality"},
		{ID: "c", DimensionMetric: models.MetricPerformance, SubMetric: "Velocity"},
	}
	dims := Derive(Inputs{
		Metric: models.MetricPerformance,
		Assessments: []models.Assessment{{Status: models.StatusSubmitted,
			Answers: []models.AssessmentAnswer{{QuestionID: "a", Score: 4}}}},
		Questions: questions,
		Method:    aggregate.MethodSimple,
	})
	require.Len(t, dims, 3)
	for _, d := range dims {
		assert.InDelta(t, 33, d.Weight, 1e-9, "round(100/3)")
	}
}

func TestDeriveIgnoresOrphanedAnswers(t *testing.T) {
	dims := Derive(Inputs{
		Metric: models.MetricMaturity,
		Assessments: []models.Assessment{{Status: models.StatusSubmitted,
			Answers: []models.AssessmentAnswer{
				{QuestionID: "q1", Score: 4},
				{QuestionID: "deleted-question", Score: 5},
			}}},
		Questions: maturityQuestions(),
		Method:    aggregate.MethodSimple,
	})
	require.NotEmpty(t, dims)
	assert.Equal(t, []float64{8}, dims[0].Scores)
}

func TestDerivePoolsAnswersAcrossAssessments(t *testing.T) {
	dims := Derive(Inputs{
		Metric: models.MetricMaturity,
		Assessments: []models.Assessment{
			{Platform: "Consumer", Status: models.StatusSubmitted,
				Answers: []models.AssessmentAnswer{{QuestionID: "q1", Score: 5}}},
			{Platform: "Digital", Status: models.StatusReviewed,
				Answers: []models.AssessmentAnswer{{QuestionID: "q1", Score: 1}}},
		},
		Questions: maturityQuestions(),
		Method:    aggregate.MethodSimple,
	})
	require.NotEmpty(t, dims)
	assert.Equal(t, []float64{10, 2}, dims[0].Scores)
	assert.InDelta(t, 6, dims[0].Average, 1e-9)
}

func TestDeriveFallbackWraparound(t *testing.T) {
	fallback := []models.DimensionScore{
		{Name: "Attrition", Weight: 33, Scores: []float64{10, 20, 30}},
	}
	dims := Derive(Inputs{
		Metric:    models.MetricStability,
		Fallback:  fallback,
		TeamCount: 5,
		Method:    aggregate.MethodSimple,
	})
	require.Len(t, dims, 1)
	// 5 teams over a 3-element canned array: indices wrap 0,1,2,0,1.
	assert.Equal(t, []float64{10, 20, 30, 10, 20}, dims[0].Scores)
	assert.InDelta(t, 18, dims[0].Average, 1e-9)
	assert.InDelta(t, 33, dims[0].Weight, 1e-9, "fallback keeps the canned weight")
}

func TestDeriveFallbackZeroTeams(t *testing.T) {
	dims := Derive(Inputs{
		Metric:    models.MetricStability,
		Fallback:  DefaultFallback(models.MetricStability),
		TeamCount: 0,
		Method:    aggregate.MethodSimple,
	})
	require.Len(t, dims, 3)
	for _, d := range dims {
		assert.Empty(t, d.Scores)
		assert.Zero(t, d.Average)
	}
}

func TestDerivePrefersAssessmentsOverFallback(t *testing.T) {
	in := Inputs{
		Metric: models.MetricMaturity,
		Assessments: []models.Assessment{{Status: models.StatusSubmitted,
			Answers: []models.AssessmentAnswer{{QuestionID: "q1", Score: 3}}}},
		Questions: maturityQuestions(),
		Fallback:  DefaultFallback(models.MetricMaturity),
		TeamCount: 24,
		Method:    aggregate.MethodSimple,
	}
	dims := Derive(in)
	// Assessment path: sub-metrics come from the question set, not the
	// canned fallback arrays.
	require.Len(t, dims, 2)
	assert.Equal(t, []float64{6}, dims[0].Scores)
}

func TestDeriveDeterministic(t *testing.T) {
	in := Inputs{
		Metric: models.MetricMaturity,
		Assessments: []models.Assessment{{Status: models.StatusSubmitted,
			Answers: []models.AssessmentAnswer{
				{QuestionID: "q1", Score: 4},
				{QuestionID: "q2", Score: 2},
				{QuestionID: "q3", Score: 5},
			}}},
		Questions: maturityQuestions(),
		Fallback:  DefaultFallback(models.MetricMaturity),
		TeamCount: 12,
		Method:    aggregate.MethodTrimmed,
	}
	first := Derive(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Derive(in))
	}
}

func TestOverall(t *testing.T) {
	dims := []models.DimensionScore{
		{Name: "A", Weight: 75, Average: 8},
		{Name: "B", Weight: 25, Average: 4},
	}
	assert.InDelta(t, 7, Overall(dims), 1e-9)
	assert.Zero(t, Overall(nil))
}
