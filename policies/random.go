package policies

import (
	"time"

	"github.com/zeu5/motor-rl-viz/types"
	"golang.org/x/exp/rand"
)

// RandomPolicy picks uniformly among the discrete actions
type RandomPolicy struct {
	numActions int
	rand       *rand.Rand
}

var _ types.Policy = &RandomPolicy{}

func NewRandomPolicy(numActions int) *RandomPolicy {
	return &RandomPolicy{
		numActions: numActions,
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (r *RandomPolicy) NextAction(_ int, _ []float64, _ []float64) types.Action {
	return types.DiscreteAction(r.rand.Intn(r.numActions))
}

func (r *RandomPolicy) Update(_ int, _ []float64, _ types.Action, _ []float64, _ float64) {
}

func (r *RandomPolicy) Reset() {
}
