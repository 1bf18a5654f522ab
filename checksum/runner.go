package checksum

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Runner executes scenarios and reports their outputs.
type Runner struct {
	opts      Options
	scenarios []Scenario
}

// NewRunner builds a Runner over all registered scenarios.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{opts: o, scenarios: Scenarios()}
}

// Run executes the scenario called name and returns its output.
func (r *Runner) Run(name string) (int, error) {
	s, err := r.lookup(name)
	if err != nil {
		return 0, err
	}
	res, err := r.run(s)
	if err != nil {
		return 0, err
	}

	return res.Got, nil
}

// RunAll executes every scenario in program order. It stops at the first
// scenario whose computation fails; mismatches are reported in the results,
// not as errors.
func (r *Runner) RunAll() ([]Result, error) {
	results := make([]Result, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		res, err := r.run(s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// Verify runs every scenario and returns an error wrapping
// ErrChecksumMismatch that names each scenario whose output was wrong.
func (r *Runner) Verify() error {
	results, err := r.RunAll()
	if err != nil {
		return err
	}
	if err = Mismatch(results); err != nil {
		return err
	}
	r.opts.Logger.Info("all scenarios verified", zap.Int("count", len(results)))

	return nil
}

// Mismatch returns nil when every result reproduced its expected output,
// otherwise an error wrapping ErrChecksumMismatch that names each wrong one.
// It runs nothing, so callers holding RunAll results can check them without
// executing the scenarios again.
func Mismatch(results []Result) error {
	var bad []string
	for _, res := range results {
		if !res.OK() {
			bad = append(bad, fmt.Sprintf("%s: got %d, want %d", res.Name, res.Got, res.Want))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, strings.Join(bad, "; "))
	}

	return nil
}

func (r *Runner) lookup(name string) (Scenario, error) {
	for _, s := range r.scenarios {
		if s.Name == name {
			return s, nil
		}
	}

	return Scenario{}, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// run executes one scenario and logs the outcome.
func (r *Runner) run(s Scenario) (Result, error) {
	got, err := s.Run()
	if err != nil {
		r.opts.Logger.Error("scenario failed", zap.String("scenario", s.Name), zap.Error(err))

		return Result{}, fmt.Errorf("checksum: %s: %w", s.Name, err)
	}
	res := Result{Name: s.Name, Got: got, Want: s.Want}
	r.opts.Logger.Debug("scenario finished",
		zap.String("scenario", s.Name),
		zap.Int("got", got),
		zap.Int("want", s.Want),
		zap.Bool("ok", res.OK()))

	return res, nil
}
