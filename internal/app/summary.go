package app

import (
	"github.com/platformetrics/maturityboard/internal/dimension"
	"github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/platformetrics/maturityboard/internal/output"
	"github.com/platformetrics/maturityboard/internal/store"
)

// SummaryOptions selects the slice of the dashboard to compute. Empty
// Platform and Pillar mean "All"; role narrowing from the resolver is
// applied on top of whatever is requested.
type SummaryOptions struct {
	User     models.UserProfile
	Quarter  string
	Platform string
	Pillar   string
	Metric   models.Metric

	// IncludeGroups adds the per-platform and per-pillar aggregate tables.
	IncludeGroups bool
	// IncludeDelta compares against the previous quarter.
	IncludeDelta bool
}

// Summary computes the dashboard view for one user. Scored assessments for
// the selected slice drive the dimension scores; when none exist the canned
// fallback profile is expanded across the visible team count.
func (a *App) Summary(opts SummaryOptions) (*output.SummaryResult, error) {
	if !models.ValidQuarter(opts.Quarter) {
		return nil, errors.ValidationErrorf("invalid quarter %q", opts.Quarter)
	}
	if !models.ValidMetric(string(opts.Metric)) {
		return nil, errors.ValidationErrorf("unknown metric %q", opts.Metric)
	}

	platform := opts.Platform
	if platform == "" {
		platform = models.PlatformAll
	}
	pillar := opts.Pillar
	if pillar == "" {
		pillar = models.PillarAll
	}

	// The constraint wins over whatever the selector asked for, on both
	// paths: a narrowed role selecting a foreign platform is redirected to
	// its own, never shown an empty or mixed view.
	constraint := a.Resolver.PlatformConstraint(opts.User)
	if constraint != "" {
		platform = constraint
	}

	sel := store.Selector{
		Quarter:            opts.Quarter,
		Platform:           platform,
		Pillar:             pillar,
		PlatformConstraint: constraint,
	}
	teams := a.Teams.Filtered(sel)
	scored := a.Assessments.Scored(opts.Quarter, platform)

	method := a.Method()
	dims := dimension.Derive(dimension.Inputs{
		Metric:      opts.Metric,
		Assessments: scored,
		Questions:   a.Assessments.PublishedQuestions(),
		Fallback:    dimension.DefaultFallback(opts.Metric),
		TeamCount:   len(teams),
		Method:      method,
	})

	source := output.SourceTeams
	if len(scored) > 0 {
		source = output.SourceAssessments
	}

	result := &output.SummaryResult{
		Quarter:    opts.Quarter,
		Platform:   platform,
		Pillar:     pillar,
		Metric:     opts.Metric,
		Method:     method,
		Source:     source,
		TeamCount:  len(teams),
		Dimensions: dims,
		Overall:    dimension.Overall(dims),
	}

	if opts.IncludeGroups {
		result.ByPlatform = dimension.GroupByPlatform(teams, method)
		result.ByPillar = dimension.GroupByPillar(teams, method)
	}

	if opts.IncludeDelta {
		if prev := previousQuarter(opts.Quarter); prev != "" {
			prevSel := sel
			prevSel.Quarter = prev
			delta := dimension.DeltaOverQuarter(teams, a.Teams.Filtered(prevSel), method)
			result.Delta = &delta
		}
	}

	return result, nil
}

func previousQuarter(quarter string) string {
	qs, err := models.RecentQuarters(quarter, 2)
	if err != nil || len(qs) < 2 {
		return ""
	}
	return qs[0]
}
