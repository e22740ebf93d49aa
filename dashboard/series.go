package dashboard

import "gonum.org/v1/plot/plotter"

// series is a bounded sliding window of XY points
type series struct {
	window int
	pts    plotter.XYs
}

func newSeries(window int) *series {
	return &series{
		window: window,
		pts:    make(plotter.XYs, 0, window),
	}
}

func (s *series) append(x, y float64) {
	if len(s.pts) == s.window {
		copy(s.pts, s.pts[1:])
		s.pts = s.pts[:len(s.pts)-1]
	}
	s.pts = append(s.pts, plotter.XY{X: x, Y: y})
}

func (s *series) len() int {
	return len(s.pts)
}

func (s *series) reset() {
	s.pts = s.pts[:0]
}

// xys copies out the points, the window keeps mutating between redraws
func (s *series) xys() plotter.XYs {
	out := make(plotter.XYs, len(s.pts))
	copy(out, s.pts)
	return out
}

func (s *series) xRange() (float64, float64) {
	if len(s.pts) == 0 {
		return 0, 0
	}
	return s.pts[0].X, s.pts[len(s.pts)-1].X
}
