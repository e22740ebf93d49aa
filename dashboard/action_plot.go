package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeu5/motor-rl-viz/types"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// ActionPlot plots one component of the applied action.
// For a discrete action space, "action_0" plots the action index.
type ActionPlot struct {
	axis *Axis

	tag       string
	component int
	tau       float64

	data *series
}

var _ Plot = &ActionPlot{}

// NewActionPlot parses an "action_{i}" tag.
// Panics on a malformed tag, this is a configuration error.
func NewActionPlot(tag string) *ActionPlot {
	i, err := strconv.Atoi(strings.TrimPrefix(tag, "action_"))
	if err != nil || i < 0 {
		panic(fmt.Sprintf("dashboard: malformed action tag %q", tag))
	}
	return &ActionPlot{
		tag:       tag,
		component: i,
		tau:       1,
		data:      newSeries(defaultWindow),
	}
}

func (a *ActionPlot) SetModules(ps types.PhysicalSystem, _ types.ReferenceGenerator, _ types.RewardFunction) {
	a.tau = ps.Tau()
}

func (a *ActionPlot) Initialize(axis *Axis) {
	a.axis = axis
}

func (a *ActionPlot) Reset() {
	a.data.reset()
}

func (a *ActionPlot) Step(d types.StepData) {
	if d.Action == nil || a.component >= d.Action.Dim() {
		// no action directly after a reset
		return
	}
	a.data.append(float64(d.K)*a.tau, d.Action.Component(a.component))
}

func (a *ActionPlot) Update() {
	if a.axis == nil {
		return
	}
	p := a.axis.NewPlot()
	p.Y.Label.Text = a.tag
	if a.data.len() > 0 {
		if line, err := plotter.NewLine(a.data.xys()); err == nil {
			line.Color = plotutil.Color(3)
			line.StepStyle = plotter.PostStep
			p.Add(line)
			p.Legend.Add(a.tag, line)
		}
	}
	a.axis.Set(p)
}

// Component returns the plotted action component index
func (a *ActionPlot) Component() int {
	return a.component
}
