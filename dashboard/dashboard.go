package dashboard

import (
	"fmt"
	"strings"

	"github.com/zeu5/motor-rl-viz/types"
	"gonum.org/v1/plot/vg"
)

// Plot is a renderable channel drawn on one sub-axis of the dashboard
type Plot interface {
	// Reset called when the environment is reset
	Reset()
	// Step called with the information about the last environmental step
	Step(types.StepData)
	// Initialize binds the plot to its sub-axis
	Initialize(*Axis)
	// Update rebuilds the axis content from the buffered data
	Update()
	// SetModules interconnects the plot with the environment modules.
	// State names, references and reward ranges are saved here for
	// later rendering.
	SetModules(types.PhysicalSystem, types.ReferenceGenerator, types.RewardFunction)
}

const (
	DefaultUpdateCycle = 1000
	defaultWindow      = 5000
)

// Config of a Dashboard
type Config struct {
	// Plots to show. Each element may either be a tag string or an
	// already instantiated Plot.
	// Possible tags:
	//   - {state name}: the corresponding state is plotted
	//   - "reward": the reward per step is plotted
	//   - "action_{i}": the i-th action component is plotted,
	//     "action_0" for a discrete action space
	Plots []interface{}
	// Number of steps after which the figure is redrawn (default 1000)
	UpdateCycle int
	// Dark background for the figure
	DarkMode bool
	// Renderers receiving the composed frames
	Renderers []Renderer
	// Width of the figure, defaults to 8 inch
	Width vg.Length
	// Height per sub-plot, defaults to 2.5 inch
	RowHeight vg.Length
}

// Dashboard plots the simulation states into graphs.
//
// Every Dashboard consists of multiple plots that are each responsible
// for one sub-axis of the figure. The Dashboard is responsible for all
// figure related tasks: it creates the figure lazily on the first step
// and refreshes it every UpdateCycle steps.
type Dashboard struct {
	plots       []Plot
	updateCycle int
	darkMode    bool
	renderers   []Renderer
	width       vg.Length
	rowHeight   vg.Length

	figure *Figure
}

var _ types.Visualization = &Dashboard{}

// New resolves the configured plot tags and returns a Dashboard.
// Panics if an element of cfg.Plots is neither a tag string nor a Plot.
func New(cfg Config) *Dashboard {
	d := &Dashboard{
		plots:       make([]Plot, 0, len(cfg.Plots)),
		updateCycle: cfg.UpdateCycle,
		darkMode:    cfg.DarkMode,
		renderers:   cfg.Renderers,
		width:       cfg.Width,
		rowHeight:   cfg.RowHeight,
	}
	if d.updateCycle <= 0 {
		d.updateCycle = DefaultUpdateCycle
	}
	if d.width <= 0 {
		d.width = 8 * vg.Inch
	}
	if d.rowHeight <= 0 {
		d.rowHeight = 2.5 * vg.Inch
	}
	for _, p := range cfg.Plots {
		switch v := p.(type) {
		case string:
			d.plots = append(d.plots, resolveTag(v))
		case Plot:
			d.plots = append(d.plots, v)
		default:
			panic(fmt.Sprintf("dashboard: %T is neither a tag string nor a Plot", p))
		}
	}
	return d
}

func resolveTag(tag string) Plot {
	switch {
	case tag == "reward":
		return NewRewardPlot()
	case strings.HasPrefix(tag, "action_"):
		return NewActionPlot(tag)
	default:
		return NewStatePlot(tag)
	}
}

// Plots returns the resolved plots in configuration order
func (d *Dashboard) Plots() []Plot {
	return d.plots
}

// Reset called when the environment is reset. All plots are reset.
func (d *Dashboard) Reset() {
	for _, p := range d.plots {
		p.Reset()
	}
}

// SetModules called during initialization of the environment to
// interconnect all modules
func (d *Dashboard) SetModules(ps types.PhysicalSystem, rg types.ReferenceGenerator, rf types.RewardFunction) {
	for _, p := range d.plots {
		p.SetModules(ps, rg, rf)
	}
}

// Step called after every environmental step with the information about
// the last step. The figure is created on the first call and redrawn
// on every UpdateCycle-th step.
func (d *Dashboard) Step(data types.StepData) {
	if d.figure == nil {
		d.initialize()
	}
	for _, p := range d.plots {
		p.Step(data)
	}
	if (data.K+1)%d.updateCycle == 0 {
		d.update()
	}
}

// Close shuts down the renderers
func (d *Dashboard) Close() error {
	var firstErr error
	for _, r := range d.renderers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// initialize sets up the figure with one sub-axis per plot sharing the
// time axis. Any previous figure is dropped.
func (d *Dashboard) initialize() {
	if len(d.plots) == 0 {
		panic("dashboard: no plots configured")
	}
	d.figure = nil
	d.figure = newFigure(len(d.plots), d.darkMode, d.width, vg.Length(len(d.plots))*d.rowHeight)
	for i, p := range d.plots {
		p.Initialize(d.figure.Axis(i))
	}
}

// update refreshes the figure: every plot redraws its own content, then
// the composed frame is handed to the renderers
func (d *Dashboard) update() {
	for _, p := range d.plots {
		p.Update()
	}
	frame := d.figure.Flush()
	for _, r := range d.renderers {
		if err := r.Render(frame); err != nil {
			fmt.Printf("dashboard: render error: %v\n", err)
		}
	}
}
