package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopd-dev/shopd/internal/api"
	"github.com/shopd-dev/shopd/internal/config"
	"github.com/shopd-dev/shopd/internal/gateway"
	"github.com/shopd-dev/shopd/internal/history"
	"github.com/shopd-dev/shopd/internal/kv"
	"github.com/shopd-dev/shopd/internal/logger"
	"github.com/shopd-dev/shopd/internal/navigator"
	"github.com/shopd-dev/shopd/internal/notify"
	"github.com/shopd-dev/shopd/internal/routes"
	"github.com/shopd-dev/shopd/internal/session"
)

// App bundles the collaborators every command needs. It is built once per
// invocation and passed to the command constructors; nothing here is a
// package-level singleton.
type App struct {
	Config   *config.Config
	Notifier notify.Notifier
	Sessions *session.Store
	Gateway  *gateway.Client
	Shop     *api.Client
	Nav      *navigator.Navigator
}

// NewApp wires the application: persisted store, auth gateway, session store,
// route table, navigator and API client.
func NewApp(cfg *config.Config) (*App, error) {
	notifier := notify.NewConsole()

	store, statePath, err := openStateStore(cfg)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(cfg.ServerURL)
	sessions := session.NewStore(store, gw, notifier)

	hist := openHistory(statePath)
	nav := navigator.New(routes.Default(), sessions, notifier, hist)

	// A restored session starts on its role landing, the same way a reloaded
	// frontend would; the guard still runs on the way there.
	if snap := sessions.Current(); snap.LoggedIn() {
		nav.Navigate(routes.Landing(snap.Role))
	}

	return &App{
		Config:   cfg,
		Notifier: notifier,
		Sessions: sessions,
		Gateway:  gw,
		Shop:     api.New(cfg.ServerURL, sessions),
		Nav:      nav,
	}, nil
}

// openStateStore picks the persisted store backend. It also reports the file
// store's directory so the history database can live next to it.
func openStateStore(cfg *config.Config) (kv.Store, string, error) {
	if cfg.Session.Backend == "keyring" {
		return kv.KeyringStore{}, "", nil
	}

	if cfg.Session.StateFile != "" {
		fs := kv.NewFileStoreAt(cfg.Session.StateFile)
		return fs, filepath.Dir(fs.Path()), nil
	}

	fs, err := kv.NewFileStore()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open state store: %w", err)
	}
	return fs, filepath.Dir(fs.Path()), nil
}

// openHistory opens the navigation history database. History is best effort:
// a failure disables recording but never blocks the CLI.
func openHistory(stateDir string) *history.Store {
	if stateDir == "" {
		return nil
	}

	log := logger.New("cli")
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		log.Warn().Err(err).Msg("Navigation history disabled")
		return nil
	}

	hist, err := history.Open(filepath.Join(stateDir, "history.db"))
	if err != nil {
		log.Warn().Err(err).Msg("Navigation history disabled")
		return nil
	}
	return hist
}
