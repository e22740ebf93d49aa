package motor

import (
	"fmt"
	"math"

	"github.com/zeu5/motor-rl-viz/types"
	"golang.org/x/exp/rand"
)

// Environment glues the motor, the reference generator and the reward
// function into the environment the policies act on
type Environment struct {
	motor *DCMotor
	rg    ReferenceGenerator
	rf    RewardFunction

	k         int
	state     []float64
	reference []float64
}

var _ types.Environment = &Environment{}

func NewEnvironment(motor *DCMotor, rg ReferenceGenerator, rf RewardFunction) *Environment {
	return &Environment{
		motor: motor,
		rg:    rg,
		rf:    rf,
	}
}

func (e *Environment) Reset() ([]float64, []float64) {
	e.k = 0
	e.state = e.motor.Reset()
	e.rg.Reset()
	e.reference = e.rg.Next(0)
	return copyVec(e.state), copyVec(e.reference)
}

// Step applies the action for one sampling interval.
// The episode ends when a state leaves its limits.
func (e *Environment) Step(a types.Action) (types.StepData, error) {
	u, err := e.actuation(a)
	if err != nil {
		return types.StepData{}, err
	}
	state := e.motor.Step(u)
	violation := limitViolated(state)
	reward := e.rf.Reward(state, e.reference, violation)

	d := types.StepData{
		K:         e.k,
		State:     copyVec(state),
		Reference: copyVec(e.reference),
		Action:    a,
		Reward:    reward,
		Done:      violation,
	}

	e.k += 1
	e.state = state
	e.reference = e.rg.Next(e.k)
	return d, nil
}

func (e *Environment) actuation(a types.Action) (float64, error) {
	levels := e.motor.VoltageLevels()
	switch v := a.(type) {
	case types.DiscreteAction:
		if int(v) < 0 || int(v) >= len(levels) {
			return 0, fmt.Errorf("action %d out of range [0, %d)", v, len(levels))
		}
		return levels[v], nil
	case types.ContinuousAction:
		if len(v) != 1 {
			return 0, fmt.Errorf("expected 1 action component, got %d", len(v))
		}
		duty := math.Max(-1, math.Min(1, v[0]))
		return duty * levels[len(levels)-1], nil
	default:
		return 0, fmt.Errorf("unsupported action type %T", a)
	}
}

func (e *Environment) PhysicalSystem() types.PhysicalSystem {
	return e.motor
}

func (e *Environment) ReferenceGenerator() types.ReferenceGenerator {
	return e.rg
}

func (e *Environment) RewardFunction() types.RewardFunction {
	return e.rf
}

func (e *Environment) ActionSample(r *rand.Rand) types.Action {
	return types.DiscreteAction(r.Intn(len(e.motor.VoltageLevels())))
}

func limitViolated(state []float64) bool {
	for _, s := range state {
		if math.Abs(s) > 1 {
			return true
		}
	}
	return false
}

func copyVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
