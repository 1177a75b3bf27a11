package spreadsheet

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/xuri/excelize/v2"
)

// Export writes a workbook with the fixed sheet order: Instructions first,
// then Teams, Assessments, Questions. Headers match the import contract
// exactly so an exported workbook re-imports to the same records.
func Export(w io.Writer, teams []models.TeamRecord, assessments []models.Assessment, questions []models.AssessmentQuestion) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetInstructions)
	writeInstructions(f)

	if err := writeTeams(f, teams); err != nil {
		return err
	}
	if err := writeAssessments(f, assessments); err != nil {
		return err
	}
	if err := writeQuestions(f, questions); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage, errors.SeverityHigh, "failed to write workbook")
	}
	return nil
}

func writeInstructions(f *excelize.File) {
	lines := []string{
		"Platform Maturity Dashboard export",
		"",
		"Teams sheet columns: " + strings.Join(TeamColumns, ", "),
		"Team metric ranges: Maturity/Performance/Agility 1-10, Stability 0-100.",
		"Team uploads replace the entire roster for the selected quarter.",
		"",
		"Assessments sheet columns: " + strings.Join(AssessmentColumns, ", "),
		"Scores are raw 1-5 questionnaire values; rows group by Platform and Quarter.",
		"",
		"Questions sheet columns: " + strings.Join(QuestionColumns, ", "),
		"Dimension Metric must be one of: Maturity, Performance, Stability, Agility.",
	}
	for i, line := range lines {
		f.SetCellValue(SheetInstructions, fmt.Sprintf("A%d", i+1), line)
	}
}

func writeTeams(f *excelize.File, teams []models.TeamRecord) error {
	if _, err := f.NewSheet(SheetTeams); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage, errors.SeverityHigh, "failed to create sheet")
	}
	writeHeader(f, SheetTeams, TeamColumns)
	for i, t := range teams {
		row := i + 2
		setRow(f, SheetTeams, row,
			t.Name,
			round1(t.Maturity),
			round1(t.Performance),
			round1(t.Agility),
			round1(t.Stability),
			t.Platform,
			t.Pillar,
		)
	}
	return nil
}

func writeAssessments(f *excelize.File, assessments []models.Assessment) error {
	if _, err := f.NewSheet(SheetAssessments); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage, errors.SeverityHigh, "failed to create sheet")
	}
	writeHeader(f, SheetAssessments, AssessmentColumns)
	row := 2
	for _, a := range assessments {
		for _, ans := range a.Answers {
			setRow(f, SheetAssessments, row, a.Platform, a.Quarter, ans.QuestionID, ans.Score, ans.Comments)
			row++
		}
	}
	return nil
}

func writeQuestions(f *excelize.File, questions []models.AssessmentQuestion) error {
	if _, err := f.NewSheet(SheetQuestions); err != nil {
		return errors.Wrap(err, errors.ErrorTypeStorage, errors.SeverityHigh, "failed to create sheet")
	}
	writeHeader(f, SheetQuestions, QuestionColumns)
	for i, q := range questions {
		setRow(f, SheetQuestions, i+2,
			q.Pillar,
			q.Question,
			q.DimensionMetric.String(),
			q.SubMetric,
			q.LowMaturity,
			q.HighMaturity,
			q.ObservableMetrics,
		)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []string) {
	for i, col := range columns {
		name, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, name, col)
	}
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		name, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, name, v)
	}
}

// round1 rounds to one decimal, the precision the spreadsheet round-trip
// contract guarantees.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
