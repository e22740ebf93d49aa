package dashboard

import (
	"math"

	"github.com/zeu5/motor-rl-viz/types"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// RewardPlot plots the reward received per step.
// The step directly after a reset carries no reward and is skipped.
type RewardPlot struct {
	axis *Axis

	tau        float64
	rmin, rmax float64
	hasRange   bool

	data *series
}

var _ Plot = &RewardPlot{}

func NewRewardPlot() *RewardPlot {
	return &RewardPlot{
		tau:  1,
		data: newSeries(defaultWindow),
	}
}

func (r *RewardPlot) SetModules(ps types.PhysicalSystem, _ types.ReferenceGenerator, rf types.RewardFunction) {
	r.tau = ps.Tau()
	r.rmin, r.rmax = rf.RewardRange()
	r.hasRange = r.rmax > r.rmin
}

func (r *RewardPlot) Initialize(axis *Axis) {
	r.axis = axis
}

func (r *RewardPlot) Reset() {
	r.data.reset()
}

func (r *RewardPlot) Step(d types.StepData) {
	if math.IsNaN(d.Reward) {
		return
	}
	r.data.append(float64(d.K)*r.tau, d.Reward)
}

func (r *RewardPlot) Update() {
	if r.axis == nil {
		return
	}
	p := r.axis.NewPlot()
	p.Y.Label.Text = "reward"
	if r.hasRange {
		pad := 0.05 * (r.rmax - r.rmin)
		p.Y.Min = r.rmin - pad
		p.Y.Max = r.rmax + pad
	}
	if r.data.len() > 0 {
		if line, err := plotter.NewLine(r.data.xys()); err == nil {
			line.Color = plotutil.Color(2)
			p.Add(line)
			p.Legend.Add("reward", line)
		}
	}
	r.axis.Set(p)
}
