package motor

import (
	"math"

	"github.com/zeu5/motor-rl-viz/types"
)

// RewardFunction scores a transition of the environment
type RewardFunction interface {
	types.RewardFunction
	// Reward for reaching state while tracking reference
	Reward(state, reference []float64, limitViolation bool) float64
}

// WeightedSumOfErrors penalizes the absolute error between state and
// reference, weighted per state variable. Rewards lie in [-1, 0], a
// limit violation yields the lower bound.
type WeightedSumOfErrors struct {
	weights []float64
	total   float64
}

var _ RewardFunction = &WeightedSumOfErrors{}

func NewWeightedSumOfErrors(weights []float64) *WeightedSumOfErrors {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		total = 1
	}
	return &WeightedSumOfErrors{
		weights: weights,
		total:   total,
	}
}

func (r *WeightedSumOfErrors) RewardRange() (float64, float64) {
	return -1, 0
}

func (r *WeightedSumOfErrors) Reward(state, reference []float64, limitViolation bool) float64 {
	if limitViolation {
		return -1
	}
	sum := 0.0
	for i, w := range r.weights {
		if i >= len(state) || i >= len(reference) {
			break
		}
		sum += w * math.Abs(state[i]-reference[i])
	}
	// normalized states differ by at most 2
	return -sum / (2 * r.total)
}
