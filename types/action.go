package types

import (
	"fmt"
	"strconv"
)

// An Action applied to the physical system
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
	// Number of action components
	Dim() int
	// Value of the i-th component
	Component(i int) float64
}

// DiscreteAction indexes into the finite action set of the environment
type DiscreteAction int

var _ Action = DiscreteAction(0)

func (a DiscreteAction) Hash() string {
	return strconv.Itoa(int(a))
}

func (a DiscreteAction) Dim() int {
	return 1
}

func (a DiscreteAction) Component(_ int) float64 {
	return float64(a)
}

// ContinuousAction is a vector of normalized actuation values
type ContinuousAction []float64

var _ Action = ContinuousAction{}

func (a ContinuousAction) Hash() string {
	return fmt.Sprintf("%v", []float64(a))
}

func (a ContinuousAction) Dim() int {
	return len(a)
}

func (a ContinuousAction) Component(i int) float64 {
	return a[i]
}
