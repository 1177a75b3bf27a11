package output

import (
	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/dimension"
	"github.com/platformetrics/maturityboard/internal/models"
)

// Source says where a summary's dimension scores came from.
type Source string

const (
	// SourceAssessments means scores were derived from questionnaire answers.
	SourceAssessments Source = "assessments"
	// SourceTeams means no qualifying assessment existed and the fallback
	// team-derived values were used.
	SourceTeams Source = "teams"
)

// SummaryResult is the chart-ready view for one metric under one filter.
type SummaryResult struct {
	Quarter    string                  `json:"quarter"`
	Platform   string                  `json:"platform"`
	Pillar     string                  `json:"pillar"`
	Metric     models.Metric           `json:"metric"`
	Method     aggregate.Method        `json:"method"`
	Source     Source                  `json:"source"`
	TeamCount  int                     `json:"team_count"`
	Dimensions []models.DimensionScore `json:"dimensions"`
	Overall    float64                 `json:"overall"`
	ByPlatform []dimension.TeamAggregate `json:"by_platform,omitempty"`
	ByPillar   []dimension.TeamAggregate `json:"by_pillar,omitempty"`
	Delta      *dimension.QuarterDelta   `json:"delta,omitempty"`
}
