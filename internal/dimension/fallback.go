package dimension

import "github.com/platformetrics/maturityboard/internal/models"

// DefaultFallback returns the canned demo dimensions shown before any
// assessment has been submitted for the active filter. Values are fixed
// display filler and deliberately not computed from real team fields.
func DefaultFallback(metric models.Metric) []models.DimensionScore {
	switch metric {
	case models.MetricMaturity:
		return []models.DimensionScore{
			{Name: "Clarity", Weight: 25, Scores: []float64{6.2, 7.1, 5.8, 6.9}},
			{Name: "Leadership", Weight: 25, Scores: []float64{7.4, 6.6, 7.0, 6.2}},
			{Name: "Process", Weight: 25, Scores: []float64{5.9, 6.4, 6.8, 5.5}},
			{Name: "Tooling", Weight: 25, Scores: []float64{6.7, 7.2, 6.1, 6.5}},
		}
	case models.MetricPerformance:
		return []models.DimensionScore{
			{Name: "Delivery", Weight: 33, Scores: []float64{7.0, 6.3, 7.5, 6.8}},
			{Name: "Quality", Weight: 33, Scores: []float64{6.5, 7.1, 6.0, 6.9}},
			{Name: "Velocity", Weight: 33, Scores: []float64{6.1, 5.8, 6.6, 7.0}},
		}
	case models.MetricStability:
		return []models.DimensionScore{
			{Name: "Attrition", Weight: 33, Scores: []float64{72, 68, 81, 75}},
			{Name: "Tenure", Weight: 33, Scores: []float64{64, 70, 66, 73}},
			{Name: "Incidents", Weight: 33, Scores: []float64{78, 74, 69, 82}},
		}
	case models.MetricAgility:
		return []models.DimensionScore{
			{Name: "Adaptability", Weight: 33, Scores: []float64{6.4, 7.0, 6.2, 6.8}},
			{Name: "Learning", Weight: 33, Scores: []float64{6.9, 6.1, 7.3, 6.5}},
			{Name: "Autonomy", Weight: 33, Scores: []float64{7.1, 6.7, 6.3, 7.4}},
		}
	default:
		return nil
	}
}
