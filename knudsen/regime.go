package knudsen

// Regime is the gas flow regime inside a tube.
type Regime string

const (
	Viscous      Regime = "viscous"
	Transitional Regime = "knudsen"
	Molecular    Regime = "molecular"
)

// p·d limits of the transition range, mbar cm
const (
	viscousLimit   = 6e-1
	molecularLimit = 1.3e-2
)

/*
FlowRegime classifies the flow from the product of pressure and diameter.

	Args:
		pressure: mbar
		diameter: cm

	Returns:
		Viscous for p·d > 0.6 mbar cm, Molecular for p·d < 1.3e-2 mbar cm,
		Transitional otherwise

	Notes:
		Leybold, Fundamentals of Vacuum Technology.
*/
func FlowRegime(pressure, diameter float64) Regime {
	pd := pressure * diameter
	switch {
	case pd > viscousLimit:
		return Viscous
	case pd < molecularLimit:
		return Molecular
	default:
		return Transitional
	}
}
