package dashboard

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Style holds the colors of the figure
type Style struct {
	Background color.Color
	Foreground color.Color
	Grid       color.Color
}

func LightStyle() Style {
	return Style{
		Background: color.White,
		Foreground: color.Black,
		Grid:       color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	}
}

// For the dark background lovers
func DarkStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Foreground: color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		Grid:       color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
	}
}

// Axis is one sub-plot slot of the figure.
// The owning plot rebuilds its content on every redraw cycle.
type Axis struct {
	style  Style
	xLabel string
	p      *plot.Plot
}

// NewPlot returns a fresh, styled plot for the next redraw
func (a *Axis) NewPlot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = a.style.Background
	p.Title.TextStyle.Color = a.style.Foreground
	p.Legend.TextStyle.Color = a.style.Foreground
	p.X.Label.Text = a.xLabel
	styleAxis(&p.X, a.style)
	styleAxis(&p.Y, a.style)

	grid := plotter.NewGrid()
	grid.Vertical.Color = a.style.Grid
	grid.Horizontal.Color = a.style.Grid
	p.Add(grid)
	return p
}

// Set hands the rebuilt axis content back to the figure
func (a *Axis) Set(p *plot.Plot) {
	a.p = p
}

func styleAxis(ax *plot.Axis, s Style) {
	ax.LineStyle.Color = s.Foreground
	ax.Label.TextStyle.Color = s.Foreground
	ax.Tick.LineStyle.Color = s.Foreground
	ax.Tick.Label.Color = s.Foreground
}

// Figure is the drawing surface of the dashboard, composed of
// vertically stacked axes sharing the time axis. The bottom axis
// carries the common time label.
type Figure struct {
	axes   []*Axis
	style  Style
	width  vg.Length
	height vg.Length
}

func newFigure(rows int, dark bool, width, height vg.Length) *Figure {
	style := LightStyle()
	if dark {
		style = DarkStyle()
	}
	axes := make([]*Axis, rows)
	for i := range axes {
		axes[i] = &Axis{style: style}
	}
	axes[rows-1].xLabel = "t/s"
	return &Figure{
		axes:   axes,
		style:  style,
		width:  width,
		height: height,
	}
}

func (f *Figure) Axis(i int) *Axis {
	return f.axes[i]
}

// Flush composes all axes into a single frame
func (f *Figure) Flush() image.Image {
	canvas := vgimg.NewWith(
		vgimg.UseWH(f.width, f.height),
		vgimg.UseBackgroundColor(f.style.Background),
	)
	dc := draw.New(canvas)

	rows := make([][]*plot.Plot, len(f.axes))
	for i, a := range f.axes {
		if a.p == nil {
			// axis was never updated, draw it empty
			a.p = a.NewPlot()
		}
		rows[i] = []*plot.Plot{a.p}
	}
	tiles := draw.Tiles{
		Rows:      len(f.axes),
		Cols:      1,
		PadY:      vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(rows, tiles, dc)
	for i, a := range f.axes {
		a.p.Draw(canvases[i][0])
	}
	return canvas.Image()
}
