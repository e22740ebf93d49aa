package dashboard

import (
	"fmt"
	"image/color"

	"github.com/zeu5/motor-rl-viz/types"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// StatePlot plots the denormalized value of one state variable together
// with its reference trajectory and the state limits
type StatePlot struct {
	axis *Axis

	state      string
	idx        int
	limit      float64
	unit       string
	referenced bool
	tau        float64

	data *series
	ref  *series
}

var _ Plot = &StatePlot{}

func NewStatePlot(state string) *StatePlot {
	return &StatePlot{
		state: state,
		idx:   -1,
		limit: 1,
		tau:   1,
		data:  newSeries(defaultWindow),
		ref:   newSeries(defaultWindow),
	}
}

func (s *StatePlot) SetModules(ps types.PhysicalSystem, rg types.ReferenceGenerator, _ types.RewardFunction) {
	s.idx = ps.StateIndex(s.state)
	if s.idx < 0 {
		panic(fmt.Sprintf("dashboard: unknown state %q", s.state))
	}
	s.limit = ps.Limits()[s.idx]
	s.unit = ps.StateUnits()[s.idx]
	s.tau = ps.Tau()
	referenced := rg.ReferencedStates()
	s.referenced = s.idx < len(referenced) && referenced[s.idx]
}

func (s *StatePlot) Initialize(axis *Axis) {
	s.axis = axis
}

func (s *StatePlot) Reset() {
	s.data.reset()
	s.ref.reset()
}

func (s *StatePlot) Step(d types.StepData) {
	if s.idx < 0 || s.idx >= len(d.State) {
		// SetModules was never called, nothing to resolve the state with
		return
	}
	x := float64(d.K) * s.tau
	s.data.append(x, d.State[s.idx]*s.limit)
	if s.referenced && s.idx < len(d.Reference) {
		s.ref.append(x, d.Reference[s.idx]*s.limit)
	}
}

func (s *StatePlot) Update() {
	if s.axis == nil {
		return
	}
	p := s.axis.NewPlot()
	label := s.state
	if s.unit != "" {
		label = fmt.Sprintf("%s/%s", s.state, s.unit)
	}
	p.Y.Label.Text = label
	p.Y.Min = -1.1 * s.limit
	p.Y.Max = 1.1 * s.limit

	if s.data.len() > 0 {
		if line, err := plotter.NewLine(s.data.xys()); err == nil {
			line.Color = plotutil.Color(0)
			p.Add(line)
			p.Legend.Add(s.state, line)
		}
		// state limits
		xmin, xmax := s.data.xRange()
		for _, y := range []float64{s.limit, -s.limit} {
			lim, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}})
			if err != nil {
				continue
			}
			lim.Color = color.RGBA{R: 0xff, A: 0xff}
			p.Add(lim)
		}
	}
	if s.ref.len() > 0 {
		if line, err := plotter.NewLine(s.ref.xys()); err == nil {
			line.Color = plotutil.Color(1)
			line.Dashes = plotutil.Dashes(1)
			p.Add(line)
			p.Legend.Add(s.state+"*", line)
		}
	}
	s.axis.Set(p)
}

// State returns the name of the plotted state variable
func (s *StatePlot) State() string {
	return s.state
}
