package spreadsheet

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Importer parses uploaded workbooks into domain records. It never mutates a
// store itself; callers apply the parsed result as one atomic replacement or
// merge, so partial-file states are never observable downstream.
type Importer struct {
	logger *logrus.Logger
}

// NewImporter creates an importer.
func NewImporter(logger *logrus.Logger) *Importer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Importer{logger: logger}
}

// readSheet opens the workbook and returns the rows of the named sheet,
// falling back to the first sheet when the named one is absent. A workbook
// that cannot be parsed is an import-boundary error.
func (im *Importer) readSheet(r io.Reader, preferred string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.WrapImport(err, "unreadable workbook")
	}
	defer f.Close()

	sheet := preferred
	if idx, _ := f.GetSheetIndex(preferred); idx < 0 {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.ImportError("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapImport(err, "failed to read worksheet")
	}
	if len(rows) == 0 {
		return nil, errors.ImportError("worksheet is empty")
	}
	return rows, nil
}

// HasSheet reports whether the workbook contains a sheet with the given
// name. Callers loading a combined workbook use it to skip sections whose
// sheet is absent instead of tripping the first-sheet fallback.
func HasSheet(r io.Reader, name string) (bool, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return false, errors.WrapImport(err, "unreadable workbook")
	}
	defer f.Close()
	idx, _ := f.GetSheetIndex(name)
	return idx >= 0, nil
}

// Teams parses a team-data workbook. Every surviving row becomes one record
// in the given quarter; non-numeric metric cells coerce to 0 and missing
// strings to "Unknown". Rows that are entirely blank are skipped. Zero valid
// rows fails the whole import with the column contract as the hint.
func (im *Importer) Teams(r io.Reader, quarter string) ([]models.TeamRecord, Summary, error) {
	rows, err := im.readSheet(r, SheetTeams)
	if err != nil {
		return nil, Summary{}, err
	}

	headers := rows[0]
	idxTeam := headerIndex(headers, "Team")
	idxMaturity := headerIndex(headers, "Maturity")
	idxPerformance := headerIndex(headers, "Performance")
	idxAgility := headerIndex(headers, "Agility")
	idxStability := headerIndex(headers, "Stability")
	idxPlatform := headerIndex(headers, "Platform")
	idxPillar := headerIndex(headers, "Pillar")

	var records []models.TeamRecord
	var sum Summary
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		name := cell(row, idxTeam)
		platform := cell(row, idxPlatform)
		pillar := cell(row, idxPillar)
		if name == "" {
			name = "Unknown"
		}
		if platform == "" {
			platform = "Unknown"
		}
		if pillar == "" {
			pillar = "Unknown"
		}
		records = append(records, models.TeamRecord{
			Name:        name,
			Platform:    platform,
			Pillar:      pillar,
			Quarter:     quarter,
			Maturity:    numeric(cell(row, idxMaturity)),
			Performance: numeric(cell(row, idxPerformance)),
			Agility:     numeric(cell(row, idxAgility)),
			Stability:   numeric(cell(row, idxStability)),
		})
		sum.Imported++
	}

	if sum.Imported == 0 {
		return nil, sum, errors.ImportError("no valid team rows found").WithHint(columnHint(TeamColumns))
	}
	im.logger.WithFields(logrus.Fields{"imported": sum.Imported, "skipped": sum.Skipped}).Info("team import parsed")
	return records, sum, nil
}

// Assessments parses an answer workbook and groups rows into one assessment
// per (platform, quarter). A row is skipped, not fatal, when it lacks a
// platform, quarter, or question id, or when its score falls outside 1-5.
// Imported assessments land as submitted, attributed to submittedBy.
func (im *Importer) Assessments(r io.Reader, submittedBy, submittedAt string) ([]models.Assessment, Summary, error) {
	rows, err := im.readSheet(r, SheetAssessments)
	if err != nil {
		return nil, Summary{}, err
	}

	headers := rows[0]
	idxPlatform := headerIndex(headers, "Platform")
	idxQuarter := headerIndex(headers, "Quarter")
	idxQuestion := headerIndex(headers, "Question ID")
	idxScore := headerIndex(headers, "Score")
	idxComments := headerIndex(headers, "Comments")

	type key struct{ platform, quarter string }
	groups := make(map[key][]models.AssessmentAnswer)
	var order []key
	var sum Summary
	rowsSeen := 0

	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowsSeen++
		platform := cell(row, idxPlatform)
		quarter := cell(row, idxQuarter)
		questionID := cell(row, idxQuestion)
		if platform == "" || quarter == "" || questionID == "" {
			sum.Skipped++
			continue
		}
		score, err := strconv.Atoi(cell(row, idxScore))
		if err != nil || score < 1 || score > 5 {
			sum.Skipped++
			continue
		}
		k := key{platform, quarter}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], models.AssessmentAnswer{
			QuestionID: questionID,
			Score:      score,
			Comments:   cell(row, idxComments),
		})
		sum.Imported++
	}

	// A header-only sheet is an empty upload, not a bad one. Only fail
	// when rows were present and none survived.
	if rowsSeen == 0 {
		return nil, sum, nil
	}
	if sum.Imported == 0 {
		return nil, sum, errors.ImportError("no valid assessment rows found").WithHint(columnHint(AssessmentColumns))
	}

	assessments := make([]models.Assessment, 0, len(order))
	for _, k := range order {
		assessments = append(assessments, models.Assessment{
			ID:          uuid.New().String(),
			Platform:    k.platform,
			Quarter:     k.quarter,
			SubmittedBy: submittedBy,
			SubmittedAt: submittedAt,
			Status:      models.StatusSubmitted,
			Answers:     groups[k],
		})
	}
	sort.Slice(assessments, func(i, j int) bool {
		if assessments[i].Platform != assessments[j].Platform {
			return assessments[i].Platform < assessments[j].Platform
		}
		return models.QuarterLess(assessments[i].Quarter, assessments[j].Quarter)
	})

	im.logger.WithFields(logrus.Fields{
		"imported":    sum.Imported,
		"skipped":     sum.Skipped,
		"assessments": len(assessments),
	}).Info("assessment import parsed")
	return assessments, sum, nil
}

// Questions parses a question bank workbook. A row is rejected when pillar,
// question text, dimension metric, or sub-metric is missing, or when the
// dimension metric is not one of the four fixed values. Generated ids carry
// the workbook row number so repeated text never collides.
func (im *Importer) Questions(r io.Reader) ([]models.AssessmentQuestion, Summary, error) {
	rows, err := im.readSheet(r, SheetQuestions)
	if err != nil {
		return nil, Summary{}, err
	}

	headers := rows[0]
	idxPillar := headerIndex(headers, "Pillar")
	idxQuestion := headerIndex(headers, "Question")
	idxMetric := headerIndex(headers, "Dimension Metric")
	idxSub := headerIndex(headers, "Sub-Metric")
	idxLow := headerIndex(headers, "Low Maturity")
	idxHigh := headerIndex(headers, "High Maturity")
	idxObservable := headerIndex(headers, "Observable Metrics")

	var questions []models.AssessmentQuestion
	var sum Summary
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		pillar := cell(row, idxPillar)
		text := cell(row, idxQuestion)
		metric := cell(row, idxMetric)
		sub := cell(row, idxSub)
		if pillar == "" || text == "" || metric == "" || sub == "" || !models.ValidMetric(metric) {
			sum.Skipped++
			continue
		}
		questions = append(questions, models.AssessmentQuestion{
			// Row index keeps ids unique even for identical question text.
			ID:                fmt.Sprintf("q-%s-%d", strings.ToLower(metric), i+2),
			Pillar:            pillar,
			Question:          text,
			LowMaturity:       cell(row, idxLow),
			HighMaturity:      cell(row, idxHigh),
			ObservableMetrics: cell(row, idxObservable),
			DimensionMetric:   models.Metric(metric),
			SubMetric:         sub,
		})
		sum.Imported++
	}

	if sum.Imported == 0 {
		return nil, sum, errors.ImportError("no valid question rows found").WithHint(columnHint(QuestionColumns[:4]))
	}
	im.logger.WithFields(logrus.Fields{"imported": sum.Imported, "skipped": sum.Skipped}).Info("question import parsed")
	return questions, sum, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// numeric coerces a cell to a float; anything unparseable becomes 0.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
