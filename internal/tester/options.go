package tester

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// DefaultColumn is the number of character columns reserved before the
// OK/FAIL marker.
const DefaultColumn = 50

// Clock supplies the time marks that bound a run.
type Clock interface {
	Now() time.Time
}

// RunIDGenerator supplies the id assigned to each run by Start.
type RunIDGenerator interface {
	Generate() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) Generate() string { return uuid.NewString() }

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the standard stream. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

// WithErrorOutput sets the error stream. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}

// WithClock sets the clock used for the start and stop marks.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithRunIDGenerator sets the generator for run ids. Defaults to random UUIDs.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(r *Runner) { r.ids = g }
}

// WithLogger sets the structured logger. Defaults to discarding everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithColumn sets the width reserved before the status marker.
// Values below zero are treated as zero.
func WithColumn(n int) Option {
	return func(r *Runner) { r.column = max(n, 0) }
}

func defaultRunner() *Runner {
	return &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  systemClock{},
		ids:    uuidGenerator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		column: DefaultColumn,
	}
}
