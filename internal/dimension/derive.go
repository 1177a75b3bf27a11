// Package dimension converts assessments or raw team rows into the named
// dimension scores the dashboard charts. Assessment-derived values take
// precedence; raw-team fallback only fills in when no qualifying assessment
// exists for the active filter.
package dimension

import (
	"math"

	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/models"
)

// answerScale maps raw 1-5 questionnaire scores onto the 2-10 chart scale.
// Applied exactly once, here at the derivation boundary.
const answerScale = 2

// Inputs carries everything Derive needs. Assessments must already be
// narrowed to the active quarter/platform filter and to scored statuses;
// Questions is the published set. Derive never consults a clock or any
// other ambient state, so a fixed Inputs value always produces identical
// output.
type Inputs struct {
	Metric      models.Metric
	Assessments []models.Assessment
	Questions   []models.AssessmentQuestion
	Fallback    []models.DimensionScore
	TeamCount   int
	Method      aggregate.Method
}

// Derive computes the dimension scores for one metric. With at least one
// qualifying assessment the scores come from questionnaire answers; without
// any, the canned fallback arrays are resampled across the team count.
func Derive(in Inputs) []models.DimensionScore {
	if len(in.Assessments) > 0 {
		return fromAssessments(in)
	}
	return fromFallback(in)
}

// fromAssessments groups the metric's published questions by sub-metric and
// averages every answered score across the filtered assessments, scaled onto
// the chart range. Answers referencing unknown question ids are ignored.
func fromAssessments(in Inputs) []models.DimensionScore {
	subOf := make(map[string]string) // question id -> sub-metric
	groups := make(map[string][]float64)
	var order []string
	for _, q := range in.Questions {
		if q.DimensionMetric != in.Metric {
			continue
		}
		subOf[q.ID] = q.SubMetric
		if _, seen := groups[q.SubMetric]; !seen {
			groups[q.SubMetric] = nil
			order = append(order, q.SubMetric)
		}
	}
	if len(order) == 0 {
		return []models.DimensionScore{}
	}

	for _, a := range in.Assessments {
		for _, ans := range a.Answers {
			sub, known := subOf[ans.QuestionID]
			if !known || ans.Score <= 0 {
				continue
			}
			groups[sub] = append(groups[sub], float64(ans.Score*answerScale))
		}
	}

	weight := math.Round(100 / float64(len(order)))
	out := make([]models.DimensionScore, 0, len(order))
	for _, sub := range order {
		scores := groups[sub]
		out = append(out, models.DimensionScore{
			Name:    sub,
			Weight:  weight,
			Scores:  scores,
			Average: aggregate.Aggregate(scores, in.Method),
		})
	}
	return out
}

// fromFallback expands the canned demo profile: each canned dimension's
// scores array is sampled with wraparound across the current team count and
// averaged over that count. The samples reuse the canned values; nothing is
// derived from the actual team metric fields.
func fromFallback(in Inputs) []models.DimensionScore {
	out := make([]models.DimensionScore, 0, len(in.Fallback))
	for _, dim := range in.Fallback {
		var scores []float64
		if len(dim.Scores) > 0 && in.TeamCount > 0 {
			scores = make([]float64, in.TeamCount)
			for i := 0; i < in.TeamCount; i++ {
				scores[i] = dim.Scores[i%len(dim.Scores)]
			}
		}
		out = append(out, models.DimensionScore{
			Name:    dim.Name,
			Weight:  dim.Weight,
			Scores:  scores,
			Average: aggregate.Aggregate(scores, in.Method),
		})
	}
	return out
}

// Overall collapses derived dimension scores into a single number using the
// true weighted mean over the dimension weights.
func Overall(dims []models.DimensionScore) float64 {
	values := make([]float64, len(dims))
	weights := make([]float64, len(dims))
	for i, d := range dims {
		values[i] = d.Average
		weights[i] = d.Weight
	}
	return aggregate.WeightedBy(values, weights)
}
