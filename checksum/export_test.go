package checksum

// NewRunnerWithScenarios builds a Runner over an explicit scenario set so
// tests can exercise mismatch and failure paths.
func NewRunnerWithScenarios(scenarios []Scenario, opts ...Option) *Runner {
	r := NewRunner(opts...)
	r.scenarios = scenarios

	return r
}
