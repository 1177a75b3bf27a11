// Package spreadsheet is the import/export boundary: Excel workbooks in, raw
// records out, and the reverse. Parse failures are reported without touching
// any store; per-row validation failures are counted and skipped so a partial
// import still succeeds.
package spreadsheet

import (
	"fmt"
	"strings"
)

// Workbook sheet names, in the fixed export order. The Instructions sheet
// always comes first so a downloaded workbook opens on the contract
// description.
const (
	SheetInstructions = "Instructions"
	SheetTeams        = "Teams"
	SheetAssessments  = "Assessments"
	SheetQuestions    = "Questions"
)

// TeamColumns is the column contract for team data, in order. Quarter is not
// a column: team uploads land in the quarter selected at import time.
var TeamColumns = []string{"Team", "Maturity", "Performance", "Agility", "Stability", "Platform", "Pillar"}

// AssessmentColumns is the column contract for assessment answer uploads.
var AssessmentColumns = []string{"Platform", "Quarter", "Question ID", "Score", "Comments"}

// QuestionColumns is the column contract for question bank uploads. The
// first four are required, the rest optional.
var QuestionColumns = []string{"Pillar", "Question", "Dimension Metric", "Sub-Metric", "Low Maturity", "High Maturity", "Observable Metrics"}

// Summary reports the outcome of a partial-tolerant import.
type Summary struct {
	Imported int
	Skipped  int
}

// String renders the user-facing "N imported, M skipped" line.
func (s Summary) String() string {
	return fmt.Sprintf("%d imported, %d skipped", s.Imported, s.Skipped)
}

// headerIndex resolves a column by exact, case-sensitive match first, then
// falls back to the lowercase variant. Returns -1 when absent.
func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	lower := strings.ToLower(name)
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == lower {
			return i
		}
	}
	return -1
}

// cell returns the trimmed value at idx, or "" when the row is short or the
// column is absent.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func columnHint(columns []string) string {
	return "expected columns: " + strings.Join(columns, ", ")
}
