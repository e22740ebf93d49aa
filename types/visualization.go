package types

// StepData is the record of one environmental step.
// Action is nil and Reward is NaN on the step directly after a reset.
type StepData struct {
	K         int       `json:"k"`
	State     []float64 `json:"state"`
	Reference []float64 `json:"reference"`
	Action    Action    `json:"action"`
	Reward    float64   `json:"reward"`
	Done      bool      `json:"done"`
}

// Visualization consumes the per-step data of an environment
type Visualization interface {
	// Reset called when the environment is reset
	Reset()
	// Step called after every environmental step
	Step(StepData)
	// SetModules called once during environment construction to
	// interconnect all modules. State names, references and reward
	// ranges can be saved here for later rendering.
	SetModules(PhysicalSystem, ReferenceGenerator, RewardFunction)
	// Close releases any rendering resources
	Close() error
}
