// Package app is the composition root: it wires the stores, permission
// resolver, preference store, and importer into one explicit application
// object that is passed down wherever state is needed. Construction is the
// single fail-fast boundary; everything after New returns errors instead of
// panicking.
package app

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/platformetrics/maturityboard/internal/access"
	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/config"
	"github.com/platformetrics/maturityboard/internal/errors"
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/platformetrics/maturityboard/internal/prefs"
	"github.com/platformetrics/maturityboard/internal/seed"
	"github.com/platformetrics/maturityboard/internal/spreadsheet"
	"github.com/platformetrics/maturityboard/internal/store"
	"github.com/sirupsen/logrus"
)

// App owns all application state. Fields are exported for the CLI layer;
// mutation goes through methods so permission checks cannot be skipped.
type App struct {
	Config      *config.Config
	Teams       *store.TeamStore
	Assessments *store.AssessmentStore
	Resolver    *access.Resolver
	Prefs       *prefs.Store

	importer *spreadsheet.Importer
	logger   *logrus.Logger
	now      func() time.Time
}

// New builds the application. The seeded question bank is loaded as the
// draft set and published immediately so self-assessment works out of the
// box; the CIO directory backs supervisor resolution.
func New(cfg *config.Config, logger *logrus.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.ConfigError("nil config at composition root")
	}
	if cfg.Dashboard.SeedQuarters <= 0 {
		return nil, errors.ConfigErrorf("seed_quarters must be positive, got %d", cfg.Dashboard.SeedQuarters)
	}
	if logger == nil {
		logger = logrus.New()
	}

	questions, err := seed.Questions()
	if err != nil {
		return nil, err
	}

	prefStore, err := prefs.Open(cfg.PrefsPath())
	if err != nil {
		return nil, err
	}

	assessments := store.NewAssessmentStore(questions, logger)
	assessments.PublishQuestions()

	return &App{
		Config:      cfg,
		Teams:       store.NewTeamStore(logger),
		Assessments: assessments,
		Resolver:    access.NewResolver(seed.CIOs(), logger),
		Prefs:       prefStore,
		importer:    spreadsheet.NewImporter(logger),
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Close releases the preference store.
func (a *App) Close() error {
	return a.Prefs.Close()
}

// Method returns the active aggregation method: the persisted preference
// when present, otherwise the configured default, otherwise simple.
func (a *App) Method() aggregate.Method {
	raw, err := a.Prefs.Get(prefs.KeyCalculationMethod)
	if err == nil && raw != "" {
		if m, perr := aggregate.ParseMethod(raw); perr == nil {
			return m
		}
	}
	if cfgMethod, err := aggregate.ParseMethod(a.Config.Dashboard.DefaultMethod); err == nil {
		return cfgMethod
	}
	return aggregate.MethodSimple
}

// SetMethod validates and persists the aggregation method preference.
func (a *App) SetMethod(raw string) error {
	method, err := aggregate.ParseMethod(raw)
	if err != nil {
		return errors.ValidationError(err.Error())
	}
	return a.Prefs.SetCalculationMethod(method)
}

// SeedTeams loads the deterministic demo roster, replacing whatever is in
// the team store. Admin only, like any destructive data management.
func (a *App) SeedTeams(user models.UserProfile) (int, error) {
	if !a.Resolver.CanManageData(user) {
		return 0, errors.PermissionError("only admins can load seed data")
	}
	records, err := seed.Teams(a.Config.Dashboard.DefaultQuarter, a.Config.Dashboard.SeedQuarters)
	if err != nil {
		return 0, err
	}
	a.Teams.ReplaceAll(records)
	return len(records), nil
}

// ImportTeams parses a team workbook and replaces the entire roster with its
// rows. The replacement is destructive and admin only.
func (a *App) ImportTeams(user models.UserProfile, r io.Reader, quarter string) (spreadsheet.Summary, error) {
	if !a.Resolver.CanManageData(user) {
		return spreadsheet.Summary{}, errors.PermissionError("only admins can replace team data")
	}
	if !models.ValidQuarter(quarter) {
		return spreadsheet.Summary{}, errors.ValidationErrorf("invalid quarter %q", quarter)
	}
	records, sum, err := a.importer.Teams(r, quarter)
	if err != nil {
		// Parse or contract failure: the store stays untouched.
		return sum, err
	}
	a.Teams.ReplaceAll(records)
	return sum, nil
}

// ImportAssessments parses an answer workbook and upserts one assessment per
// (platform, quarter) group. Admin only; this is the on-behalf creation
// path, distinct from a platform lead's own submission.
func (a *App) ImportAssessments(user models.UserProfile, r io.Reader) (spreadsheet.Summary, error) {
	if !a.Resolver.CanManageData(user) {
		return spreadsheet.Summary{}, errors.PermissionError("only admins can import assessments")
	}
	assessments, sum, err := a.importer.Assessments(r, user.Name, a.now().UTC().Format(time.RFC3339))
	if err != nil {
		return sum, err
	}
	for _, assessment := range assessments {
		a.Assessments.Upsert(assessment)
	}
	return sum, nil
}

// ImportQuestions parses a question bank workbook into the draft set. The
// draft becomes dirty; nothing reaches end users until an explicit publish.
func (a *App) ImportQuestions(user models.UserProfile, r io.Reader) (spreadsheet.Summary, error) {
	if !a.Resolver.CanEditQuestions(user) {
		return spreadsheet.Summary{}, errors.PermissionError("only admins can edit the question bank")
	}
	questions, sum, err := a.importer.Questions(r)
	if err != nil {
		return sum, err
	}
	a.Assessments.EditQuestions(func([]models.AssessmentQuestion) []models.AssessmentQuestion {
		return questions
	})
	return sum, nil
}

// LoadWorkbook reads a combined workbook into the stores. Only the team
// sheet is required; the assessment and question sections load when their
// named sheet is present, so a teams-only workbook loads cleanly and the
// seeded question bank stays published.
func (a *App) LoadWorkbook(user models.UserProfile, r io.Reader, quarter string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.WrapImport(err, "could not read workbook")
	}

	if _, err := a.ImportTeams(user, bytes.NewReader(data), quarter); err != nil {
		return err
	}

	hasAssessments, err := spreadsheet.HasSheet(bytes.NewReader(data), spreadsheet.SheetAssessments)
	if err != nil {
		return err
	}
	if hasAssessments {
		if _, err := a.ImportAssessments(user, bytes.NewReader(data)); err != nil {
			return err
		}
	}

	hasQuestions, err := spreadsheet.HasSheet(bytes.NewReader(data), spreadsheet.SheetQuestions)
	if err != nil {
		return err
	}
	if hasQuestions {
		if _, err := a.ImportQuestions(user, bytes.NewReader(data)); err != nil {
			return err
		}
		return a.PublishQuestions(user)
	}
	return nil
}

// PublishQuestions snapshots the draft question set for end users.
func (a *App) PublishQuestions(user models.UserProfile) error {
	if !a.Resolver.CanEditQuestions(user) {
		return errors.PermissionError("only admins can publish questions")
	}
	a.Assessments.PublishQuestions()
	return nil
}

// SubmitAssessment records a platform lead's self-assessment for their own
// platform, replacing any earlier submission for the same quarter.
func (a *App) SubmitAssessment(user models.UserProfile, platform, quarter string, answers []models.AssessmentAnswer) error {
	if !a.Resolver.CanSubmit(user, platform) {
		return errors.PermissionError(fmt.Sprintf("%s may not submit an assessment for %s", user.Name, platform))
	}
	if !models.ValidQuarter(quarter) {
		return errors.ValidationErrorf("invalid quarter %q", quarter)
	}
	a.Assessments.Upsert(models.Assessment{
		ID:          uuid.New().String(),
		Platform:    platform,
		Quarter:     quarter,
		SubmittedBy: user.Name,
		SubmittedAt: a.now().UTC().Format(time.RFC3339),
		Status:      models.StatusSubmitted,
		Answers:     answers,
	})
	return nil
}

// ReviewQueue lists the assessments the user may review.
func (a *App) ReviewQueue(user models.UserProfile) []models.Assessment {
	return a.Resolver.ReviewQueue(user, a.Assessments.Assessments())
}

// MarkReviewed records a review after checking the role matrix, including
// the self-review prohibition for platform leads.
func (a *App) MarkReviewed(user models.UserProfile, platform, quarter string) error {
	target, ok := a.Assessments.Get(platform, quarter)
	if !ok {
		return errors.ValidationErrorf("no assessment found for %s %s", platform, quarter)
	}
	if !a.Resolver.CanReview(user, target) {
		return errors.PermissionError(fmt.Sprintf("%s may not review the %s assessment", user.Name, platform))
	}
	return a.Assessments.MarkReviewed(platform, quarter, user.Name, a.now().UTC().Format(time.RFC3339))
}

// Export writes the workbook for the user's visible slice of the data.
// The team sheet carries no quarter column, so only one quarter's roster
// is written; an empty quarter exports every record.
func (a *App) Export(user models.UserProfile, w io.Writer, quarter string) error {
	constraint := a.Resolver.PlatformConstraint(user)

	teams := a.Teams.All()
	if quarter != "" {
		teams = store.Filter(teams, store.Selector{Quarter: quarter, Platform: models.PlatformAll, Pillar: models.PillarAll})
	}
	assessments := a.Assessments.Assessments()
	if constraint != "" {
		var visibleTeams []models.TeamRecord
		for _, t := range teams {
			if t.Platform == constraint {
				visibleTeams = append(visibleTeams, t)
			}
		}
		teams = visibleTeams

		var visibleAssessments []models.Assessment
		for _, assessment := range assessments {
			if assessment.Platform == constraint {
				visibleAssessments = append(visibleAssessments, assessment)
			}
		}
		assessments = visibleAssessments
	}

	return spreadsheet.Export(w, teams, assessments, a.Assessments.PublishedQuestions())
}
