package types

// Policy selects the next action from the current observation
type Policy interface {
	NextAction(step int, state []float64, reference []float64) Action
	Update(step int, state []float64, action Action, nextState []float64, reward float64)
	Reset()
}
