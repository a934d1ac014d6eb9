// Package knudsen computes the conductance of cylindrical tubes with the
// Knudsen equation, together with the throughput, cost and pump-out time
// quantities derived from it.
package knudsen

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
Conductance returns the conductance of a tube.

	Args:
		pressure: pressure drop across the tube, mbar
		length: tube length, cm
		diameter: tube inner diameter, cm

	Returns:
		conductance, L/s

	Notes:
		Leybold, Fundamentals of Vacuum Technology, Eq. 1.26.
		When the pressure drop is large the pressure on the high-pressure
		side may be used instead.
		Inputs are not validated. length = 0 gives +Inf (NaN if pressure is
		also 0); diameter = 0 gives exactly 0.
*/
func Conductance(pressure, length, diameter float64) float64 {
	p, l, d := pressure, length, diameter
	return viscousCoeff*math.Pow(d, 4)/l*p +
		molecularCoeff*math.Pow(d, 3)/l*(1+knudsenNum*d*p)/(1+knudsenDen*d*p)
}

/*
ConductanceOverPressure evaluates Conductance for every pressure with a
fixed tube geometry.

	Args:
		dst: destination, allocated when nil, [n]
		pressures: pressure drops, mbar, [n]
		length: tube length, cm
		diameter: tube inner diameter, cm

	Returns:
		conductance, L/s, [n]
*/
func ConductanceOverPressure(dst, pressures []float64, length, diameter float64) []float64 {
	dst = sized(dst, len(pressures))
	for i, p := range pressures {
		dst[i] = Conductance(p, length, diameter)
	}
	return dst
}

/*
ConductanceOverDiameter evaluates Conductance for every diameter at a
fixed pressure and length.

	Args:
		dst: destination, allocated when nil, [n]
		pressure: pressure drop, mbar
		length: tube length, cm
		diameters: tube inner diameters, cm, [n]

	Returns:
		conductance, L/s, [n]
*/
func ConductanceOverDiameter(dst []float64, pressure, length float64, diameters []float64) []float64 {
	dst = sized(dst, len(diameters))
	for i, d := range diameters {
		dst[i] = Conductance(pressure, length, d)
	}
	return dst
}

// LogPressures returns n pressures spaced evenly on a log scale between
// min and max inclusive, mbar. It panics if n < 2.
func LogPressures(min, max float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), min, max)
}

// Linspace returns n values spaced evenly between min and max inclusive.
// It panics if n < 2.
func Linspace(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n), min, max)
}

func sized(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic("knudsen: slice length mismatch")
	}
	return dst
}
