package models

// PlatformAll is the selector sentinel that disables platform narrowing.
const PlatformAll = "All"

// PillarAll is the selector sentinel that disables pillar narrowing.
const PillarAll = "All"

// Platforms is the fixed set of business units teams and assessments belong to.
var Platforms = []string{"Consumer", "Commercial", "Enterprise", "Digital"}

// Pillars is the fixed set of organizational categories used to group teams
// and assessment questions.
var Pillars = []string{
	"Engineering Excellence",
	"Product Strategy",
	"Operational Resilience",
	"Data & Analytics",
	"Customer Experience",
	"People & Culture",
}

// TeamRecord is one row of raw team data: one record per (team, quarter).
// Team names are unique within a platform+quarter but not globally.
// Records are replaced wholesale on upload, never edited in place.
type TeamRecord struct {
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Pillar      string  `json:"pillar"`
	Quarter     string  `json:"quarter"`
	Maturity    float64 `json:"maturity"`    // 1-10
	Performance float64 `json:"performance"` // 1-10
	Agility     float64 `json:"agility"`     // 1-10
	Stability   float64 `json:"stability"`   // 0-100
}

// DimensionScore is a derived, chart-ready score for one sub-metric.
// Average is always recomputable from Scores via the active aggregation
// method and is never mutated independently.
type DimensionScore struct {
	Name    string    `json:"name"`
	Weight  float64   `json:"weight"` // 0-100, weights in a metric group sum to ~100
	Scores  []float64 `json:"scores"`
	Average float64   `json:"average"`
}

// Metric is one of the four top-level scored dimension categories.
type Metric string

const (
	MetricMaturity    Metric = "Maturity"
	MetricPerformance Metric = "Performance"
	MetricStability   Metric = "Stability"
	MetricAgility     Metric = "Agility"
)

// String returns the string representation of the metric.
func (m Metric) String() string { return string(m) }

// Metrics lists the four dimension metrics in display order.
var Metrics = []Metric{MetricMaturity, MetricPerformance, MetricStability, MetricAgility}

// SubMetrics maps each dimension metric to its fixed set of sub-metrics.
var SubMetrics = map[Metric][]string{
	MetricMaturity:    {"Clarity", "Leadership", "Process", "Tooling"},
	MetricPerformance: {"Delivery", "Quality", "Velocity"},
	MetricStability:   {"Attrition", "Tenure", "Incidents"},
	MetricAgility:     {"Adaptability", "Learning", "Autonomy"},
}

// ValidMetric reports whether s names one of the four dimension metrics.
func ValidMetric(s string) bool {
	switch Metric(s) {
	case MetricMaturity, MetricPerformance, MetricStability, MetricAgility:
		return true
	}
	return false
}

// AssessmentQuestion is a single questionnaire item. Two parallel collections
// exist in the store: the admin-edited draft set and the published set end
// users answer against.
type AssessmentQuestion struct {
	ID                string `json:"id"`
	Pillar            string `json:"pillar"`
	Question          string `json:"question"`
	LowMaturity       string `json:"low_maturity"`
	HighMaturity      string `json:"high_maturity"`
	ObservableMetrics string `json:"observable_metrics"`
	DimensionMetric   Metric `json:"dimension_metric"`
	SubMetric         string `json:"sub_metric"`
}

// AssessmentStatus tracks an assessment through its lifecycle.
type AssessmentStatus string

const (
	StatusDraft     AssessmentStatus = "draft"
	StatusSubmitted AssessmentStatus = "submitted"
	StatusReviewed  AssessmentStatus = "reviewed"
)

// Assessment is one platform's questionnaire submission for one quarter.
// At most one assessment exists per (platform, quarter); submissions with the
// same key replace the existing record.
type Assessment struct {
	ID          string             `json:"id"`
	Platform    string             `json:"platform"`
	Quarter     string             `json:"quarter"`
	SubmittedBy string             `json:"submitted_by"`
	SubmittedAt string             `json:"submitted_at"`
	ReviewedBy  string             `json:"reviewed_by,omitempty"`
	ReviewedAt  string             `json:"reviewed_at,omitempty"`
	Status      AssessmentStatus   `json:"status"`
	Answers     []AssessmentAnswer `json:"answers"`
}

// Scored reports whether the assessment counts toward derived dimension
// scores (drafts do not).
func (a *Assessment) Scored() bool {
	return a.Status == StatusSubmitted || a.Status == StatusReviewed
}

// AssessmentAnswer is one answer within an assessment. Score 0 means
// unanswered; answers whose QuestionID is not in the question set are
// silently ignored during scoring.
type AssessmentAnswer struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"` // 0-5, 0 = unanswered
	Comments   string `json:"comments"`
}

// Role is the set of personas the dashboard serves.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleUser       Role = "user" // team/platform lead
	RoleReviewer   Role = "reviewer"
	RoleSuperuser  Role = "superuser"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSupervisor, RoleUser, RoleReviewer, RoleSuperuser:
		return Role(s), true
	}
	return "", false
}

// UserProfile is the in-memory session identity. CIOID is set iff the role is
// supervisor; PlatformID is set iff the role is user.
type UserProfile struct {
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	CIOID      string `json:"cio_id,omitempty"`
	PlatformID string `json:"platform_id,omitempty"`
}

// CIO maps one named supervisor assignment to exactly one platform.
type CIO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
}
