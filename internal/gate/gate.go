package gate

import "github.com/flyawayhq/flyaway/internal/domain"

// Requirement is what a view demands of the visitor.
type Requirement int

const (
	// RequireAnyAuthenticated admits any non-empty session.
	RequireAnyAuthenticated Requirement = iota
	RequireCustomer
	RequireAdmin
)

// Decision is the gate's verdict. The denial policy is uniform: every denial
// redirects to login, never an inert denied state.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

// CanAccess reports whether the session's role satisfies the required role.
// An unauthenticated session, or one carrying an unrecognized role, satisfies
// nothing.
func CanAccess(sess domain.Session, required domain.Role) bool {
	return sess.Role() != domain.RoleUnknown && sess.Role() == required
}

// Decide maps a session and a requirement to the single gate decision.
func Decide(sess domain.Session, req Requirement) Decision {
	switch req {
	case RequireAnyAuthenticated:
		if sess.Authenticated() && sess.Role() != domain.RoleUnknown {
			return Allow
		}
	case RequireCustomer:
		if CanAccess(sess, domain.RoleCustomer) {
			return Allow
		}
	case RequireAdmin:
		if CanAccess(sess, domain.RoleAdmin) {
			return Allow
		}
	}
	return RedirectToLogin
}
