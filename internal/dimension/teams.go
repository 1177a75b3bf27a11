package dimension

import (
	"sort"

	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/models"
)

// TeamAggregate is one row of a grouped team view: every metric reduced with
// the active aggregation method over the group's records.
type TeamAggregate struct {
	Group       string  `json:"group"`
	Teams       int     `json:"teams"`
	Maturity    float64 `json:"maturity"`
	Performance float64 `json:"performance"`
	Agility     float64 `json:"agility"`
	Stability   float64 `json:"stability"`
}

// GroupByPlatform reduces records into one aggregate per platform, ordered
// by the fixed platform list with unknown platforms appended alphabetically.
func GroupByPlatform(records []models.TeamRecord, method aggregate.Method) []TeamAggregate {
	return groupBy(records, method, func(r models.TeamRecord) string { return r.Platform }, models.Platforms)
}

// GroupByPillar reduces records into one aggregate per pillar.
func GroupByPillar(records []models.TeamRecord, method aggregate.Method) []TeamAggregate {
	return groupBy(records, method, func(r models.TeamRecord) string { return r.Pillar }, models.Pillars)
}

func groupBy(records []models.TeamRecord, method aggregate.Method, key func(models.TeamRecord) string, order []string) []TeamAggregate {
	buckets := make(map[string][]models.TeamRecord)
	for _, r := range records {
		k := key(r)
		buckets[k] = append(buckets[k], r)
	}

	known := make(map[string]bool, len(order))
	var groups []string
	for _, g := range order {
		known[g] = true
		if _, ok := buckets[g]; ok {
			groups = append(groups, g)
		}
	}
	var extra []string
	for g := range buckets {
		if !known[g] {
			extra = append(extra, g)
		}
	}
	sort.Strings(extra)
	groups = append(groups, extra...)

	out := make([]TeamAggregate, 0, len(groups))
	for _, g := range groups {
		rows := buckets[g]
		out = append(out, TeamAggregate{
			Group:       g,
			Teams:       len(rows),
			Maturity:    aggregate.Aggregate(pluck(rows, models.MetricMaturity), method),
			Performance: aggregate.Aggregate(pluck(rows, models.MetricPerformance), method),
			Agility:     aggregate.Aggregate(pluck(rows, models.MetricAgility), method),
			Stability:   aggregate.Aggregate(pluck(rows, models.MetricStability), method),
		})
	}
	return out
}

func pluck(records []models.TeamRecord, metric models.Metric) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		switch metric {
		case models.MetricMaturity:
			out[i] = r.Maturity
		case models.MetricPerformance:
			out[i] = r.Performance
		case models.MetricAgility:
			out[i] = r.Agility
		case models.MetricStability:
			out[i] = r.Stability
		}
	}
	return out
}

// QuarterDelta is the quarter-over-quarter movement of each metric's
// aggregate. Previous counts of zero leave the delta equal to the current
// aggregate, which reads as "new data" in trend views.
type QuarterDelta struct {
	Maturity    float64 `json:"maturity"`
	Performance float64 `json:"performance"`
	Agility     float64 `json:"agility"`
	Stability   float64 `json:"stability"`
}

// DeltaOverQuarter compares the current quarter's records against the
// previous quarter's using the same aggregation method for both sides.
func DeltaOverQuarter(current, previous []models.TeamRecord, method aggregate.Method) QuarterDelta {
	return QuarterDelta{
		Maturity:    aggregate.Aggregate(pluck(current, models.MetricMaturity), method) - aggregate.Aggregate(pluck(previous, models.MetricMaturity), method),
		Performance: aggregate.Aggregate(pluck(current, models.MetricPerformance), method) - aggregate.Aggregate(pluck(previous, models.MetricPerformance), method),
		Agility:     aggregate.Aggregate(pluck(current, models.MetricAgility), method) - aggregate.Aggregate(pluck(previous, models.MetricAgility), method),
		Stability:   aggregate.Aggregate(pluck(current, models.MetricStability), method) - aggregate.Aggregate(pluck(previous, models.MetricStability), method),
	}
}
