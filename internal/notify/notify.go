package notify

import (
	"github.com/rs/zerolog"

	"github.com/shopd-dev/shopd/internal/logger"
)

// Notifier surfaces transient user-facing notices. Notices are the only way
// auth and guard outcomes reach the user; none of them are fatal.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Console writes notices through the application logger.
type Console struct {
	logger zerolog.Logger
}

// NewConsole returns the default Notifier.
func NewConsole() *Console {
	return &Console{logger: logger.New("notice")}
}

func (c *Console) Success(msg string) { c.logger.Info().Msg(msg) }
func (c *Console) Warning(msg string) { c.logger.Warn().Msg(msg) }
func (c *Console) Error(msg string)   { c.logger.Error().Msg(msg) }

// Recorder collects notices for tests.
type Recorder struct {
	Successes []string
	Warnings  []string
	Errors    []string
}

func (r *Recorder) Success(msg string) { r.Successes = append(r.Successes, msg) }
func (r *Recorder) Warning(msg string) { r.Warnings = append(r.Warnings, msg) }
func (r *Recorder) Error(msg string)   { r.Errors = append(r.Errors, msg) }
