package guard

import (
	"github.com/shopd-dev/shopd/internal/routes"
	"github.com/shopd-dev/shopd/internal/session"
)

// Action is the outcome of evaluating a navigation attempt.
type Action int

const (
	// Allow lets the navigation commit to its target.
	Allow Action = iota
	// Redirect replaces the target with Decision.Target.
	Redirect
	// Deny cancels the navigation; the user stays where they are.
	Deny
)

// Severity of the notice attached to a decision.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// Decision tells the navigator what to do with a navigation attempt.
type Decision struct {
	Action   Action
	Target   string // redirect destination, set when Action is Redirect
	Notice   string // user-facing message, empty when nothing to surface
	Severity Severity
}

// Evaluate gates one navigation attempt. It is a pure function of the target
// route and a session snapshot; it never suspends and never touches state.
//
// The auth check runs strictly before the role check, so an unauthenticated
// request to a role-gated destination is redirected to login, not denied.
// The logged-in redirect away from the login page fires only for exactly the
// login path; a session with an unrecognized role falls through and is
// allowed to render the login page.
func Evaluate(target routes.Route, snap session.Session) Decision {
	if target.Meta.RequiresAuth {
		if !snap.LoggedIn() {
			return Decision{
				Action:   Redirect,
				Target:   routes.LoginPath,
				Notice:   "Please log in first",
				Severity: SeverityWarning,
			}
		}
		if target.Meta.Role != "" && target.Meta.Role != snap.Role {
			return Decision{
				Action:   Deny,
				Notice:   "You are not authorized to view this page",
				Severity: SeverityError,
			}
		}
	}

	if target.Path == routes.LoginPath && snap.LoggedIn() {
		if landing := routes.Landing(snap.Role); landing != routes.LoginPath {
			return Decision{Action: Redirect, Target: landing}
		}
	}

	return Decision{Action: Allow}
}
