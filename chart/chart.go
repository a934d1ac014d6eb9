// Package chart draws line charts of computed series to image files.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Scale is the scale of an axis.
type Scale int

const (
	Linear Scale = iota
	Log
)

// Orientation is the direction of a reference line.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// default line width, points
const defaultWidth = 1.5

// Axis describes one axis of a panel. Min and Max are used only when one
// of them is non-zero.
type Axis struct {
	Label    string
	Scale    Scale
	Min, Max float64
}

// Series is one curve.
type Series struct {
	X, Y  []float64
	Label string
	Color string
	Alpha float64
	Width float64 // points
	Dash  Dash
}

// RefLine is a constant line across a panel, e.g. the throughput of a pump.
type RefLine struct {
	Orientation Orientation
	Value       float64
	Label       string
	Color       string
	Alpha       float64
	Width       float64 // points
	Dash        Dash
}

// Panel is one set of axes.
type Panel struct {
	Title    string
	X, Y     Axis
	Grid     bool
	Series   []Series
	RefLines []RefLine
}

// Figure is one output file holding panels stacked vertically.
type Figure struct {
	Width, Height float64 // inches
	Panels        []Panel
}

/*
Render draws fig to path.

	Args:
		fig: figure to draw
		path: output file; the format follows the extension (png, jpg, tif,
			pdf, svg)
*/
func Render(fig Figure, path string) error {
	if len(fig.Panels) == 0 {
		return errors.New("chart: figure has no panels")
	}

	plots := make([][]*plot.Plot, len(fig.Panels))
	for i, pn := range fig.Panels {
		p, err := pn.plot()
		if err != nil {
			return fmt.Errorf("chart: panel %d: %w", i, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := draw.NewFormattedCanvas(vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("chart: %s: %w", path, err)
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
		PadY:      4 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("chart: write %s: %w", path, err)
	}
	return f.Close()
}

func (pn Panel) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.Title
	setAxis(&p.X, pn.X)
	setAxis(&p.Y, pn.Y)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(8)

	if pn.Grid {
		g := plotter.NewGrid()
		g.Vertical.Color, _ = ParseColor("k", 0.2)
		g.Horizontal.Color, _ = ParseColor("k", 0.2)
		p.Add(g)
	}

	var ys []float64
	for i, s := range pn.Series {
		xy := s.points(pn.X.Scale == Log, pn.Y.Scale == Log)
		if len(xy) == 0 {
			continue
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		if err := style(&l.LineStyle, s.Color, s.Alpha, s.Width, s.Dash); err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		p.Add(l)
		if s.Label != "" {
			p.Legend.Add(s.Label, l)
		}
		for _, pt := range xy {
			ys = append(ys, pt.Y)
		}
	}

	for i, r := range pn.RefLines {
		var ln plot.Plotter
		var ls *draw.LineStyle
		switch r.Orientation {
		case Horizontal:
			v := r.Value
			f := plotter.NewFunction(func(float64) float64 { return v })
			ln, ls = f, &f.LineStyle
			// a Function has no data range, so the line would be clipped
			if pn.Y.Scale != Log || v > 0 {
				p.Y.Min = math.Min(p.Y.Min, v)
				p.Y.Max = math.Max(p.Y.Max, v)
			}
		case Vertical:
			if len(ys) == 0 {
				return nil, fmt.Errorf("reference line %d: vertical line needs series data", i)
			}
			l, err := plotter.NewLine(plotter.XYs{
				{X: r.Value, Y: floats.Min(ys)},
				{X: r.Value, Y: floats.Max(ys)},
			})
			if err != nil {
				return nil, fmt.Errorf("reference line %d: %w", i, err)
			}
			ln, ls = l, &l.LineStyle
		default:
			return nil, fmt.Errorf("reference line %d: invalid orientation %d", i, r.Orientation)
		}
		if err := style(ls, r.Color, r.Alpha, r.Width, r.Dash); err != nil {
			return nil, fmt.Errorf("reference line %d: %w", i, err)
		}
		p.Add(ln)
		if r.Label != "" {
			p.Legend.Add(r.Label, ln.(plot.Thumbnailer))
		}
	}

	if pn.X.Min != 0 || pn.X.Max != 0 {
		p.X.Min, p.X.Max = pn.X.Min, pn.X.Max
	}
	if pn.Y.Min != 0 || pn.Y.Max != 0 {
		p.Y.Min, p.Y.Max = pn.Y.Min, pn.Y.Max
	}

	return p, nil
}

func setAxis(a *plot.Axis, ax Axis) {
	a.Label.Text = ax.Label
	if ax.Scale == Log {
		a.Scale = plot.LogScale{}
		a.Tick.Marker = plot.LogTicks{Prec: -1}
	}
}

func style(ls *draw.LineStyle, name string, alpha, width float64, d Dash) error {
	c, err := ParseColor(name, alpha)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = defaultWidth
	}
	ds, err := dashes(d, width)
	if err != nil {
		return err
	}

	ls.Color = c
	ls.Width = vg.Points(width)
	ls.Dashes = ds
	return nil
}

// points drops the values that cannot be drawn: non-finite values, and
// non-positive values on a log axis.
func (s Series) points(xLog, yLog bool) plotter.XYs {
	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}

	xy := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if !drawable(x, xLog) || !drawable(y, yLog) {
			continue
		}
		xy = append(xy, plotter.XY{X: x, Y: y})
	}
	return xy
}

func drawable(v float64, log bool) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return !log || v > 0
}
