package checksum

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrUnknownScenario is returned when a scenario name is not registered.
	ErrUnknownScenario = errors.New("checksum: unknown scenario")

	// ErrChecksumMismatch is returned by Verify when a scenario's output
	// differs from its expected value.
	ErrChecksumMismatch = errors.New("checksum: output does not match expected value")
)

// Scenario is one fixed program: a name, its expected output, and the
// computation producing it.
type Scenario struct {
	Name string
	Want int
	Run  func() (int, error)
}

// Result is the outcome of running one Scenario.
type Result struct {
	Name string
	Got  int
	Want int
}

// OK reports whether the scenario reproduced its expected output.
func (r Result) OK() bool { return r.Got == r.Want }

// Option configures a Runner via functional arguments.
type Option func(*Options)

// Options holds Runner dependencies.
type Options struct {
	// Logger receives one debug entry per executed scenario.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the Runner logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
