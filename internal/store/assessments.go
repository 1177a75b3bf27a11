package store

import (
	"fmt"
	"sync"

	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/sirupsen/logrus"
)

// QuestionState is the explicit two-state machine behind the draft/published
// question sets. Editing always lands in StateDraft; publishing snapshots the
// draft and lands in StatePublishedAndClean. The dirty flag is driven by edit
// intent, never by structural diffing.
type QuestionState int

const (
	// StateDraft means the draft set has edits not yet published.
	StateDraft QuestionState = iota
	// StatePublishedAndClean means the published set mirrors the draft and
	// no edits have occurred since the last publish.
	StatePublishedAndClean
)

// AssessmentStore holds assessment submissions plus the draft and published
// question sets. Assessments are keyed by (platform, quarter): upserting an
// existing key replaces the record wholesale, which is the one deliberate
// exception to the roster's replace-everything rule and what allows
// incremental per-platform submission.
type AssessmentStore struct {
	mu          sync.RWMutex
	assessments []models.Assessment
	draft       []models.AssessmentQuestion
	published   []models.AssessmentQuestion
	state       QuestionState
	logger      *logrus.Logger
}

// NewAssessmentStore creates a store seeded with the given draft question
// set. Nothing is published until PublishQuestions runs.
func NewAssessmentStore(draft []models.AssessmentQuestion, logger *logrus.Logger) *AssessmentStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &AssessmentStore{
		draft:  copyQuestions(draft),
		state:  StateDraft,
		logger: logger,
	}
}

// Upsert replaces the assessment with the same (platform, quarter) key, or
// appends when no such record exists. The later submission wins wholesale:
// answers, status, and review fields all come from the incoming record.
func (s *AssessmentStore) Upsert(a models.Assessment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.assessments {
		if existing.Platform == a.Platform && existing.Quarter == a.Quarter {
			s.assessments[i] = a
			s.logger.WithFields(logrus.Fields{
				"platform": a.Platform,
				"quarter":  a.Quarter,
				"status":   a.Status,
			}).Debug("assessment replaced")
			return
		}
	}
	s.assessments = append(s.assessments, a)
	s.logger.WithFields(logrus.Fields{
		"platform": a.Platform,
		"quarter":  a.Quarter,
		"status":   a.Status,
	}).Debug("assessment added")
}

// Assessments returns a copy of all assessments.
func (s *AssessmentStore) Assessments() []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assessment(nil), s.assessments...)
}

// Get returns the assessment for (platform, quarter), if any.
func (s *AssessmentStore) Get(platform, quarter string) (models.Assessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assessments {
		if a.Platform == platform && a.Quarter == quarter {
			return a, true
		}
	}
	return models.Assessment{}, false
}

// Scored returns the submitted or reviewed assessments for the quarter,
// narrowed to one platform unless platform is the "All" sentinel or empty.
func (s *AssessmentStore) Scored(quarter, platform string) []models.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Assessment
	for _, a := range s.assessments {
		if a.Quarter != quarter || !a.Scored() {
			continue
		}
		if platform != "" && platform != models.PlatformAll && a.Platform != platform {
			continue
		}
		out = append(out, a)
	}
	return out
}

// MarkReviewed transitions a submitted assessment to reviewed, recording who
// reviewed it and when. Reviewing a draft or missing assessment is an error.
func (s *AssessmentStore) MarkReviewed(platform, quarter, reviewer, at string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.assessments {
		if a.Platform != platform || a.Quarter != quarter {
			continue
		}
		if a.Status != models.StatusSubmitted {
			return fmt.Errorf("assessment for %s %s is %s, only submitted assessments can be reviewed", platform, quarter, a.Status)
		}
		s.assessments[i].Status = models.StatusReviewed
		s.assessments[i].ReviewedBy = reviewer
		s.assessments[i].ReviewedAt = at
		return nil
	}
	return fmt.Errorf("no assessment found for %s %s", platform, quarter)
}

// EditQuestions applies mutator to the draft set and unconditionally moves to
// StateDraft, even when the result is structurally identical to the last
// publish. Edit intent drives the flag, not diffing.
func (s *AssessmentStore) EditQuestions(mutator func([]models.AssessmentQuestion) []models.AssessmentQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = mutator(s.draft)
	s.state = StateDraft
}

// PublishQuestions snapshots the draft set into the published set. The copy
// is structural, so later draft edits never leak into what users are
// answering against.
func (s *AssessmentStore) PublishQuestions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = copyQuestions(s.draft)
	s.state = StatePublishedAndClean
	s.logger.WithField("questions", len(s.published)).Info("question set published")
}

// QuestionsPublished reports whether the published set is current with the
// draft set.
func (s *AssessmentStore) QuestionsPublished() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StatePublishedAndClean
}

// DraftQuestions returns a copy of the draft set.
func (s *AssessmentStore) DraftQuestions() []models.AssessmentQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyQuestions(s.draft)
}

// PublishedQuestions returns a copy of the published set, which may be empty
// if nothing has been published yet.
func (s *AssessmentStore) PublishedQuestions() []models.AssessmentQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyQuestions(s.published)
}

func copyQuestions(qs []models.AssessmentQuestion) []models.AssessmentQuestion {
	return append([]models.AssessmentQuestion(nil), qs...)
}
