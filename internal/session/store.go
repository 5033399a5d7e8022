package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopd-dev/shopd/internal/kv"
	"github.com/shopd-dev/shopd/internal/logger"
	"github.com/shopd-dev/shopd/internal/notify"
)

// StoreKey is the single persisted record holding the full session. Writing
// the whole session as one record means a restart can never observe a token
// without its role.
const StoreKey = "session"

// Credentials is what an Authenticator hands back on success.
type Credentials struct {
	Token  string
	UserID string
}

// Authenticator is the slice of the auth gateway the store depends on.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password, role string) (Credentials, error)
}

// Change describes a committed session transition.
type Change struct {
	LoggedIn bool
	Role     string
}

// Listener receives session changes after they are committed. The store never
// navigates itself; whoever owns navigation subscribes.
type Listener func(Change)

// Store owns the in-memory session and mirrors it to persisted storage. It is
// constructed once at startup and handed to its collaborators; there is no
// package-level instance.
type Store struct {
	mu        sync.Mutex
	current   Session
	kv        kv.Store
	auth      Authenticator
	notifier  notify.Notifier
	listeners []Listener
	logger    zerolog.Logger
}

// NewStore builds a Store and restores any persisted session.
func NewStore(store kv.Store, auth Authenticator, notifier notify.Notifier) *Store {
	s := &Store{
		kv:       store,
		auth:     auth,
		notifier: notifier,
		logger:   logger.New("session"),
	}
	s.restore()
	return s
}

// restore loads the persisted session record. A record whose token is set but
// whose role is not a known role can never pass the guard's role check, so it
// is discarded instead of carried into memory.
func (s *Store) restore() {
	raw, ok := s.kv.Get(StoreKey)
	if !ok {
		return
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding unreadable session record")
		_ = s.kv.Remove(StoreKey)
		return
	}

	if sess.Token != "" && !ValidRole(sess.Role) {
		s.logger.Warn().Str("role", sess.Role).Msg("Discarding session record with unknown role")
		_ = s.kv.Remove(StoreKey)
		return
	}

	s.current = sess
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsLoggedIn reports whether a credential is held.
func (s *Store) IsLoggedIn() bool {
	return s.Current().LoggedIn()
}

// OnChange registers a listener for committed session transitions. Register
// before the first Login/Logout call; registration is not synchronized with
// emission.
func (s *Store) OnChange(listener Listener) {
	s.listeners = append(s.listeners, listener)
}

// Login authenticates against the gateway and, on success, commits the new
// session and mirrors it to persisted storage. Every gateway failure is
// absorbed here: the previous session stays committed and the caller sees
// false plus an error notice. The session is not touched while the call is
// in flight, so concurrent guard evaluations see the pre-login state.
func (s *Store) Login(ctx context.Context, username, password, role string) bool {
	creds, err := s.auth.Authenticate(ctx, username, password, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role", role).Msg("Login failed")
		s.notifier.Error("Login failed. Check your credentials and try again.")
		return false
	}

	next := Session{Token: creds.Token, Role: role, UserID: creds.UserID}

	s.mu.Lock()
	if next.UserID == "" {
		// The gateway does not always return an identifier
		next.UserID = s.current.UserID
	}
	s.current = next
	s.mu.Unlock()

	s.persist(next)
	s.notifier.Success("Logged in.")
	s.emit(Change{LoggedIn: true, Role: role})
	return true
}

// Logout clears the session and removes the persisted record. Safe to call
// when already logged out; the end state and side effects are the same.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	if err := s.kv.Remove(StoreKey); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to remove persisted session")
	}

	s.notifier.Success("Logged out.")
	s.emit(Change{LoggedIn: false})
}

// persist mirrors the committed session. The in-memory session stays
// committed even when the mirror write fails; the cost of a dead store is
// persistence across restarts, not the current run.
func (s *Store) persist(sess Session) {
	data, err := json.Marshal(sess)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode session")
		return
	}
	if err := s.kv.Set(StoreKey, string(data)); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist session")
	}
}

func (s *Store) emit(change Change) {
	for _, listener := range s.listeners {
		listener(change)
	}
}
