// Package access implements the role-based visibility and permission rules.
// Everything here is a pure function of the user profile plus the CIO
// directory; results are recomputed per call, never cached.
package access

import (
	"github.com/platformetrics/maturityboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Resolver answers visibility and permission questions for a user. The CIO
// directory is only consulted for supervisors, whose platform assignment is
// resolved through their cioId.
type Resolver struct {
	cios   map[string]models.CIO
	logger *logrus.Logger
}

// NewResolver builds a resolver over the CIO directory.
func NewResolver(cios []models.CIO, logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
	}
	byID := make(map[string]models.CIO, len(cios))
	for _, c := range cios {
		byID[c.ID] = c
	}
	return &Resolver{cios: byID, logger: logger}
}

// PlatformConstraint returns the single platform a user is narrowed to, or
// "" when the role sees all platforms. An unresolvable supervisor cioId
// yields no narrowing: the resolver fails open rather than hiding all
// data. The miss is logged so directory gaps can be spotted.
func (r *Resolver) PlatformConstraint(user models.UserProfile) string {
	switch user.Role {
	case models.RoleSupervisor:
		cio, ok := r.cios[user.CIOID]
		if !ok {
			r.logger.WithField("cio_id", user.CIOID).Warn("supervisor cioId did not resolve, granting unrestricted visibility")
			return ""
		}
		return cio.Platform
	case models.RoleUser:
		return user.PlatformID
	default:
		// admin, superuser, and reviewer see every platform.
		return ""
	}
}

// VisiblePlatforms filters allPlatforms down to what the user may see.
func (r *Resolver) VisiblePlatforms(user models.UserProfile, allPlatforms []string) []string {
	constraint := r.PlatformConstraint(user)
	if constraint == "" {
		return append([]string(nil), allPlatforms...)
	}
	out := make([]string, 0, 1)
	for _, p := range allPlatforms {
		if p == constraint {
			out = append(out, p)
		}
	}
	return out
}

// CanSee reports whether the user may view data for the given platform.
func (r *Resolver) CanSee(user models.UserProfile, platform string) bool {
	constraint := r.PlatformConstraint(user)
	return constraint == "" || constraint == platform
}

// CanSubmit reports whether the user may submit a self-assessment for the
// platform. Only platform leads submit, and only for their own platform;
// admins create assessments on behalf of platforms through data management,
// not through submission.
func (r *Resolver) CanSubmit(user models.UserProfile, platform string) bool {
	return user.Role == models.RoleUser && user.PlatformID == platform
}

// CanReview reports whether the user may review the given assessment.
// Reviewers review any submitted assessment; platform leads peer-review
// submitted assessments of other platforms, never their own.
func (r *Resolver) CanReview(user models.UserProfile, a models.Assessment) bool {
	if a.Status != models.StatusSubmitted {
		return false
	}
	switch user.Role {
	case models.RoleReviewer:
		return true
	case models.RoleUser:
		return a.Platform != user.PlatformID
	default:
		return false
	}
}

// ReviewQueue returns the assessments the user may act on. For platform
// leads the queue excludes their own platform's assessment regardless of its
// status; self-review is never offered.
func (r *Resolver) ReviewQueue(user models.UserProfile, assessments []models.Assessment) []models.Assessment {
	var out []models.Assessment
	for _, a := range assessments {
		if user.Role == models.RoleUser && a.Platform == user.PlatformID {
			continue
		}
		if r.CanReview(user, a) {
			out = append(out, a)
		}
	}
	return out
}

// CanEditQuestions reports whether the user may edit the question bank and
// dashboard settings. Admin only.
func (r *Resolver) CanEditQuestions(user models.UserProfile) bool {
	return user.Role == models.RoleAdmin
}

// CanManageData reports whether the user may run destructive data-management
// operations (roster replacement, seeding). Admin only.
func (r *Resolver) CanManageData(user models.UserProfile) bool {
	return user.Role == models.RoleAdmin
}

// Sections returns the navigation sections visible to the role, in display
// order. The presentation layer renders exactly these.
func (r *Resolver) Sections(user models.UserProfile) []string {
	switch user.Role {
	case models.RoleAdmin:
		return []string{"dashboard", "assessments", "questions", "data", "settings"}
	case models.RoleReviewer:
		return []string{"dashboard", "assessments", "reviews"}
	case models.RoleUser:
		return []string{"dashboard", "self-assessment", "reviews"}
	case models.RoleSupervisor, models.RoleSuperuser:
		return []string{"dashboard", "assessments"}
	default:
		return []string{"dashboard"}
	}
}
