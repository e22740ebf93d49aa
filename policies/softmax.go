package policies

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/zeu5/motor-rl-viz/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMaxPolicy is a tabular Q-learning policy. The continuous state
// and reference vectors are discretized into a coarse grid to index
// the Q table, actions are drawn from the softmax distribution over
// the Q values.
type SoftMaxPolicy struct {
	qTable      map[string][]float64
	numActions  int
	bins        int
	alpha       float64
	gamma       float64
	temperature float64
	rand        rand.Source
}

var _ types.Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(numActions, bins int, alpha, gamma, temperature float64) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		qTable:      make(map[string][]float64),
		numActions:  numActions,
		bins:        bins,
		alpha:       alpha,
		gamma:       gamma,
		temperature: temperature,
		rand:        rand.NewSource(uint64(time.Now().UnixNano())),
	}
}

func (p *SoftMaxPolicy) Reset() {
	p.qTable = make(map[string][]float64)
}

func (p *SoftMaxPolicy) NextAction(_ int, state []float64, _ []float64) types.Action {
	key := p.discretize(state)
	qValues := p.row(key)

	sum := float64(0)
	weights := make([]float64, p.numActions)
	for i, q := range qValues {
		exp := math.Exp(q / p.temperature)
		weights[i] = exp
		sum += exp
	}
	for i, w := range weights {
		weights[i] = w / sum
	}
	i, ok := sampleuv.NewWeighted(weights, p.rand).Take()
	if !ok {
		i = 0
	}
	return types.DiscreteAction(i)
}

func (p *SoftMaxPolicy) Update(_ int, state []float64, action types.Action, nextState []float64, reward float64) {
	a, ok := action.(types.DiscreteAction)
	if !ok || int(a) < 0 || int(a) >= p.numActions {
		return
	}
	key := p.discretize(state)
	nextKey := p.discretize(nextState)
	qValues := p.row(key)

	max := float64(0)
	if next, ok := p.qTable[nextKey]; ok {
		max = next[0]
		for _, q := range next[1:] {
			if q > max {
				max = q
			}
		}
	}
	qValues[a] = (1-p.alpha)*qValues[a] + p.alpha*(reward+p.gamma*max)
}

func (p *SoftMaxPolicy) row(key string) []float64 {
	if _, ok := p.qTable[key]; !ok {
		p.qTable[key] = make([]float64, p.numActions)
	}
	return p.qTable[key]
}

// discretize maps the normalized state onto a grid of p.bins cells per
// dimension and returns the cell key
func (p *SoftMaxPolicy) discretize(state []float64) string {
	var b strings.Builder
	for _, s := range state {
		b.WriteString(strconv.Itoa(p.bin(s)))
		b.WriteByte(',')
	}
	return b.String()
}

func (p *SoftMaxPolicy) bin(v float64) int {
	i := int(math.Floor((v + 1) / 2 * float64(p.bins)))
	if i < 0 {
		return 0
	}
	if i >= p.bins {
		return p.bins - 1
	}
	return i
}
