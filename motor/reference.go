package motor

import (
	"fmt"
	"math"
	"time"

	"github.com/zeu5/motor-rl-viz/types"
	"golang.org/x/exp/rand"
)

// ReferenceGenerator produces the normalized reference trajectory of
// the environment, one value per state variable and step
type ReferenceGenerator interface {
	types.ReferenceGenerator
	// Reset called at the start of each episode
	Reset()
	// Next returns the reference vector for step k
	Next(k int) []float64
}

// SineReference generates a sine trajectory on a single state variable
type SineReference struct {
	idx       int
	dim       int
	amplitude float64
	frequency float64 // in hertz
	offset    float64
	tau       float64
}

var _ ReferenceGenerator = &SineReference{}

func NewSineReference(ps types.PhysicalSystem, state string, amplitude, frequency, offset float64) *SineReference {
	idx := ps.StateIndex(state)
	if idx < 0 {
		panic(fmt.Sprintf("motor: unknown reference state %q", state))
	}
	return &SineReference{
		idx:       idx,
		dim:       len(ps.StateNames()),
		amplitude: amplitude,
		frequency: frequency,
		offset:    offset,
		tau:       ps.Tau(),
	}
}

func (s *SineReference) ReferencedStates() []bool {
	mask := make([]bool, s.dim)
	mask[s.idx] = true
	return mask
}

func (s *SineReference) Reset() {}

func (s *SineReference) Next(k int) []float64 {
	ref := make([]float64, s.dim)
	ref[s.idx] = s.offset + s.amplitude*math.Sin(2*math.Pi*s.frequency*float64(k)*s.tau)
	return ref
}

// WienerReference generates a bounded random walk on a single state
// variable
type WienerReference struct {
	idx   int
	dim   int
	sigma float64
	value float64
	rand  *rand.Rand
}

var _ ReferenceGenerator = &WienerReference{}

func NewWienerReference(ps types.PhysicalSystem, state string, sigma float64) *WienerReference {
	idx := ps.StateIndex(state)
	if idx < 0 {
		panic(fmt.Sprintf("motor: unknown reference state %q", state))
	}
	return &WienerReference{
		idx:   idx,
		dim:   len(ps.StateNames()),
		sigma: sigma,
		rand:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (w *WienerReference) ReferencedStates() []bool {
	mask := make([]bool, w.dim)
	mask[w.idx] = true
	return mask
}

func (w *WienerReference) Reset() {
	w.value = 0
}

func (w *WienerReference) Next(_ int) []float64 {
	w.value += w.sigma * w.rand.NormFloat64()
	if w.value > 1 {
		w.value = 1
	} else if w.value < -1 {
		w.value = -1
	}
	ref := make([]float64, w.dim)
	ref[w.idx] = w.value
	return ref
}
