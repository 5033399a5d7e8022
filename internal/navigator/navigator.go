package navigator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopd-dev/shopd/internal/guard"
	"github.com/shopd-dev/shopd/internal/history"
	"github.com/shopd-dev/shopd/internal/logger"
	"github.com/shopd-dev/shopd/internal/notify"
	"github.com/shopd-dev/shopd/internal/routes"
	"github.com/shopd-dev/shopd/internal/session"
)

// Navigator owns the current destination and applies guard decisions to move
// between destinations. It subscribes to session changes so that login and
// logout cause navigation without the session store knowing about routes.
type Navigator struct {
	table    *routes.Table
	sessions *session.Store
	notifier notify.Notifier
	history  *history.Store // optional; nil disables recording
	current  string
	logger   zerolog.Logger
}

// New wires a Navigator to its collaborators and registers it as a session
// change listener. The user starts on the login page.
func New(table *routes.Table, sessions *session.Store, notifier notify.Notifier, hist *history.Store) *Navigator {
	n := &Navigator{
		table:    table,
		sessions: sessions,
		notifier: notifier,
		history:  hist,
		current:  routes.LoginPath,
		logger:   logger.New("navigator"),
	}
	sessions.OnChange(n.onSessionChange)
	return n
}

// Current returns the path of the destination the user is on.
func (n *Navigator) Current() string {
	return n.current
}

// History exposes the navigation history store; nil when recording is
// disabled.
func (n *Navigator) History() *history.Store {
	return n.history
}

// Navigate attempts to move to path. The guard runs before the move commits:
// an allow moves to the target, a redirect moves to the redirect target, and
// a deny leaves the current destination unchanged.
func (n *Navigator) Navigate(path string) guard.Decision {
	target, ok := n.table.Resolve(path)
	if !ok {
		n.notifier.Warning(fmt.Sprintf("Unknown destination: %s", path))
		return guard.Decision{Action: guard.Deny}
	}

	// Route-level redirects (e.g. a layout landing on its first child) are
	// followed before the guard runs, so the guard sees the real target.
	if target.Redirect != "" && target.Redirect != target.Path {
		return n.Navigate(target.Redirect)
	}

	decision := guard.Evaluate(target, n.sessions.Current())

	switch decision.Severity {
	case guard.SeverityWarning:
		n.notifier.Warning(decision.Notice)
	case guard.SeverityError:
		n.notifier.Error(decision.Notice)
	}

	switch decision.Action {
	case guard.Allow:
		n.move(path)
		n.record(path, "allow", path)
	case guard.Redirect:
		n.move(decision.Target)
		n.record(path, "redirect", decision.Target)
	case guard.Deny:
		n.record(path, "deny", n.current)
	}

	return decision
}

// Ensure navigates to path and reports whether the user ended up there.
// Commands for protected screens call this before doing any API work.
func (n *Navigator) Ensure(path string) bool {
	decision := n.Navigate(path)
	return decision.Action == guard.Allow
}

func (n *Navigator) move(path string) {
	n.logger.Debug().Str("from", n.current).Str("to", path).Msg("Navigating")
	n.current = path
}

func (n *Navigator) record(path, outcome, landed string) {
	if n.history == nil {
		return
	}
	if err := n.history.Record(path, outcome, landed); err != nil {
		n.logger.Warn().Err(err).Msg("Failed to record navigation")
	}
}

// onSessionChange moves to the role landing after login and back to the
// login page after logout.
func (n *Navigator) onSessionChange(change session.Change) {
	if change.LoggedIn {
		n.Navigate(routes.Landing(change.Role))
		return
	}
	n.Navigate(routes.LoginPath)
}
