package types

import "golang.org/x/exp/rand"

// PhysicalSystem describes the simulated system to the plots and policies.
// States are exchanged normalized to [-1, 1] by the corresponding limit.
type PhysicalSystem interface {
	// Names of the state variables, fixed order
	StateNames() []string
	// Unit of each state variable, same order as StateNames
	StateUnits() []string
	// Absolute limit of each state variable
	Limits() []float64
	// Nominal value of each state variable
	Nominal() []float64
	// Sampling time of the simulation in seconds
	Tau() float64
	// Number of action components
	ActionDim() int
	// Index of the named state, -1 if unknown
	StateIndex(name string) int
}

// ReferenceGenerator produces the reference trajectory the policy should track
type ReferenceGenerator interface {
	// Mask over the state vector, true where a reference is generated
	ReferencedStates() []bool
}

// RewardFunction scores the distance of the state to the reference
type RewardFunction interface {
	// Smallest and largest possible reward per step
	RewardRange() (float64, float64)
}

// Environment of the simulation that policies act on
type Environment interface {
	// Reset called at the start of each episode
	// Returns the initial normalized state and reference
	Reset() (state []float64, reference []float64)
	// Step applies the action for one sampling interval
	Step(Action) (StepData, error)

	PhysicalSystem() PhysicalSystem
	ReferenceGenerator() ReferenceGenerator
	RewardFunction() RewardFunction

	// ActionSample draws a random valid action
	ActionSample(*rand.Rand) Action
}
