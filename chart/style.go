package chart

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Dash is the dash pattern of a line.
type Dash string

const (
	Solid  Dash = "solid"
	Dashed Dash = "dashed"
	Dotted Dash = "dotted"
)

var palette = map[string]color.NRGBA{
	"":        {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	"b":       {B: 0xff, A: 0xff},
	"blue":    {B: 0xff, A: 0xff},
	"g":       {G: 0x80, A: 0xff},
	"green":   {G: 0x80, A: 0xff},
	"r":       {R: 0xff, A: 0xff},
	"red":     {R: 0xff, A: 0xff},
	"m":       {R: 0xbf, B: 0xbf, A: 0xff},
	"magenta": {R: 0xff, B: 0xff, A: 0xff},
	"k":       {A: 0xff},
	"black":   {A: 0xff},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

/*
ParseColor returns the color with the given name.

	Args:
		name: single letter or full name (r, red, b, blue, g, green, m,
			magenta, k, black, gray); the empty name is the default series
			color
		alpha: opacity in (0, 1]; 0 is opaque
*/
func ParseColor(name string, alpha float64) (color.NRGBA, error) {
	c, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", name)
	}
	if alpha > 0 && alpha < 1 {
		c.A = uint8(alpha*255 + 0.5)
	}
	return c, nil
}

// dashes returns the dash pattern scaled by the line width, in points.
func dashes(d Dash, width float64) ([]vg.Length, error) {
	switch d {
	case "", Solid:
		return nil, nil
	case Dashed:
		return []vg.Length{vg.Points(3.7 * width), vg.Points(1.6 * width)}, nil
	case Dotted:
		return []vg.Length{vg.Points(1 * width), vg.Points(1.65 * width)}, nil
	default:
		return nil, fmt.Errorf("unknown dash %q", d)
	}
}
