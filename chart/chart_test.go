package chart

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLogPanel() Panel {
	xs := []float64{1e-3, 1e-2, 1e-1, 1, 10, 100, 1000}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2 + 3*x
	}
	return Panel{
		Title:  "log-log\nsecond line",
		X:      Axis{Label: "Pressure (mbar)", Scale: Log},
		Y:      Axis{Label: "Conductance (L/s)", Scale: Log},
		Series: []Series{{X: xs, Y: ys, Label: "curve", Color: "red", Dash: Dotted}},
		RefLines: []RefLine{
			{Orientation: Horizontal, Value: 260, Label: "260 L/s", Color: "m", Alpha: 0.2, Width: 2},
			{Orientation: Horizontal, Value: 4.2, Color: "k", Alpha: 0.2, Width: 1},
		},
	}
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chart.pdf", "chart.png", "chart.svg", "Tubing conductance 1.1.PDF"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Render(Figure{Width: 10, Height: 7, Panels: []Panel{logLogPanel()}}, path), name)
		requireNonEmptyFile(t, path)
	}
}

func TestRenderStackedPanels(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	top := Panel{
		Y:      Axis{Label: "Conductance (L/s)"},
		X:      Axis{Label: "Tube diameter (µm)"},
		Grid:   true,
		Series: []Series{{X: xs, Y: []float64{1, 4, 9, 16, 25}}},
	}
	bottom := Panel{
		Y:        Axis{Label: "Time for pumpout (sec)", Scale: Log},
		X:        Axis{Label: "Tube diameter (µm)"},
		Grid:     true,
		Series:   []Series{{X: xs, Y: []float64{100, 50, 30, 20, 10}}},
		RefLines: []RefLine{{Orientation: Vertical, Value: 2.5, Color: "r", Dash: Dashed}},
	}

	path := filepath.Join(t.TempDir(), "pumpout of tubes.png")
	require.NoError(t, Render(Figure{Width: 8, Height: 8, Panels: []Panel{top, bottom}}, path))
	requireNonEmptyFile(t, path)
}

func TestHorizontalRefLineExtendsYRange(t *testing.T) {
	pn := Panel{
		X:      Axis{Scale: Log},
		Y:      Axis{Scale: Log},
		Series: []Series{{X: []float64{1, 10, 100}, Y: []float64{0.01, 0.1, 1}}},
		RefLines: []RefLine{
			{Orientation: Horizontal, Value: 260, Label: "260 L/s (HiPace 300)"},
			{Orientation: Horizontal, Value: 1e-4},
			{Orientation: Horizontal, Value: 0},
		},
	}

	p, err := pn.plot()
	require.NoError(t, err)
	assert.Equal(t, 260.0, p.Y.Max)
	assert.Equal(t, 1e-4, p.Y.Min)
	assert.Equal(t, 1.0, p.X.Min)
	assert.Equal(t, 100.0, p.X.Max)

	pn.Y.Scale = Linear
	p, err = pn.plot()
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)

	pn.Y.Min, pn.Y.Max = 1e-3, 10
	p, err = pn.plot()
	require.NoError(t, err)
	assert.Equal(t, 1e-3, p.Y.Min)
	assert.Equal(t, 10.0, p.Y.Max)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	assert.Error(t, Render(Figure{Width: 4, Height: 4}, filepath.Join(dir, "empty.png")))
	assert.Error(t, Render(Figure{Width: 4, Height: 4, Panels: []Panel{logLogPanel()}}, filepath.Join(dir, "chart.xyz")))

	bad := logLogPanel()
	bad.Series[0].Color = "chartreuse"
	assert.Error(t, Render(Figure{Width: 4, Height: 4, Panels: []Panel{bad}}, filepath.Join(dir, "bad.png")))

	vertical := Panel{RefLines: []RefLine{{Orientation: Vertical, Value: 1}}}
	assert.Error(t, Render(Figure{Width: 4, Height: 4, Panels: []Panel{vertical}}, filepath.Join(dir, "vertical.png")))

	assert.Error(t, Render(Figure{Width: 4, Height: 4, Panels: []Panel{logLogPanel()}}, filepath.Join(dir, "missing", "chart.png")))
}

func TestSeriesPointsDropsUndrawableValues(t *testing.T) {
	s := Series{
		X: []float64{1, 2, 3, 4, 5, 6},
		Y: []float64{1, math.Inf(1), math.NaN(), 0, -1, 2},
	}

	lin := s.points(false, false)
	require.Len(t, lin, 4)
	assert.Equal(t, []float64{1, 4, 5, 6}, []float64{lin[0].X, lin[1].X, lin[2].X, lin[3].X})

	lg := s.points(false, true)
	require.Len(t, lg, 2)
	assert.Equal(t, 1.0, lg[0].X)
	assert.Equal(t, 6.0, lg[1].X)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("m", 0.2)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xbf, B: 0xbf, A: 51}, c)

	c, err = ParseColor(" Red ", 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)

	_, err = ParseColor("chartreuse", 1)
	assert.Error(t, err)
}

func TestDashes(t *testing.T) {
	ds, err := dashes(Solid, 2)
	require.NoError(t, err)
	assert.Nil(t, ds)

	ds, err = dashes(Dashed, 2)
	require.NoError(t, err)
	assert.Len(t, ds, 2)

	_, err = dashes("dashdot", 1)
	assert.Error(t, err)
}
