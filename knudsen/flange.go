package knudsen

import "fmt"

// LineStyle is the dash pattern used to draw a flange size.
type LineStyle string

const (
	Solid  LineStyle = "solid"
	Dashed LineStyle = "dashed"
	Dotted LineStyle = "dotted"
)

// Flange is a KF (ISO-KF) small flange size.
type Flange string

const (
	KF16 Flange = "KF16"
	KF25 Flange = "KF25"
	KF40 Flange = "KF40"
	KF50 Flange = "KF50"
)

// ParseFlange returns the flange named s.
func ParseFlange(s string) (Flange, error) {
	switch f := Flange(s); f {
	case KF16, KF25, KF40, KF50:
		return f, nil
	default:
		return "", fmt.Errorf("unknown flange %q", s)
	}
}

/*
Diameter returns the nominal inner diameter of tubing for the flange.

	Returns:
		diameter, cm

	Notes:
		KF16 3/4 inch, KF25 1 inch, KF40 1.5 inch, KF50 2 inch.
*/
func (f Flange) Diameter() float64 {
	switch f {
	case KF16:
		return 2.0
	case KF25:
		return 2.5
	case KF40:
		return 3.8
	case KF50:
		return 5.0
	default:
		panic("invalid flange")
	}
}

// Style returns the dash pattern the tubing chart draws the flange with.
func (f Flange) Style() LineStyle {
	switch f {
	case KF25:
		return Dotted
	case KF40:
		return Dashed
	default:
		return Solid
	}
}
