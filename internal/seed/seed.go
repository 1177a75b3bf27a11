// Package seed produces the deterministic demo dataset the dashboard starts
// with: a full team roster, the default question bank, and the CIO
// directory. Values are derived from indices, never from a RNG or clock, so
// two seeds of the same shape are identical.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// teamNames maps each pillar index to a demo team name. Names repeat across
// platforms, which mirrors production data: team names are only unique
// within a platform+quarter.
var teamNames = []string{"Falcon", "Atlas", "Borealis", "Cascade", "Ember", "Drift"}

// Teams generates one record per platform, pillar, and quarter: with the
// four platforms and six pillars that is 24 records per quarter.
func Teams(lastQuarter string, quarterCount int) ([]models.TeamRecord, error) {
	quarters, err := models.RecentQuarters(lastQuarter, quarterCount)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, errors.SeverityHigh, "bad seed quarter")
	}

	var records []models.TeamRecord
	for qi, quarter := range quarters {
		for pi, platform := range models.Platforms {
			for li, pillar := range models.Pillars {
				records = append(records, models.TeamRecord{
					Name:        fmt.Sprintf("%s %s", teamNames[li], platform),
					Platform:    platform,
					Pillar:      pillar,
					Quarter:     quarter,
					Maturity:    metric10(pi + li + qi),
					Performance: metric10(pi*2 + li + qi),
					Agility:     metric10(pi + li*2 + qi),
					Stability:   metric100(pi + li + qi*2),
				})
			}
		}
	}
	return records, nil
}

// metric10 spreads an index over the 1-10 range with a 0.5 step so quarters
// show visible movement.
func metric10(i int) float64 {
	return 3 + float64(i%13)*0.5
}

// metric100 spreads an index over the 0-100 stability range.
func metric100(i int) float64 {
	return 55 + float64(i%10)*4.5
}

type questionFile struct {
	Questions []struct {
		ID                string `yaml:"id"`
		Pillar            string `yaml:"pillar"`
		Question          string `yaml:"question"`
		LowMaturity       string `yaml:"low_maturity"`
		HighMaturity      string `yaml:"high_maturity"`
		ObservableMetrics string `yaml:"observable_metrics"`
		DimensionMetric   string `yaml:"dimension_metric"`
		SubMetric         string `yaml:"sub_metric"`
	} `yaml:"questions"`
}

// Questions loads the embedded default question bank.
func Questions() ([]models.AssessmentQuestion, error) {
	var file questionFile
	if err := yaml.Unmarshal(questionsYAML, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, errors.SeverityCritical, "embedded question bank is malformed")
	}
	questions := make([]models.AssessmentQuestion, 0, len(file.Questions))
	for _, q := range file.Questions {
		if !models.ValidMetric(q.DimensionMetric) {
			return nil, errors.InternalError(fmt.Sprintf("embedded question %s has unknown dimension metric %q", q.ID, q.DimensionMetric))
		}
		questions = append(questions, models.AssessmentQuestion{
			ID:                q.ID,
			Pillar:            q.Pillar,
			Question:          q.Question,
			LowMaturity:       q.LowMaturity,
			HighMaturity:      q.HighMaturity,
			ObservableMetrics: q.ObservableMetrics,
			DimensionMetric:   models.Metric(q.DimensionMetric),
			SubMetric:         q.SubMetric,
		})
	}
	return questions, nil
}

// CIOs returns the demo supervisor directory, one CIO per platform.
func CIOs() []models.CIO {
	return []models.CIO{
		{ID: "cio-consumer", Name: "Priya Shah", Platform: "Consumer"},
		{ID: "cio-commercial", Name: "Alex Mercer", Platform: "Commercial"},
		{ID: "cio-enterprise", Name: "Dana Whitfield", Platform: "Enterprise"},
		{ID: "cio-digital", Name: "Marcus Obi", Platform: "Digital"},
	}
}
