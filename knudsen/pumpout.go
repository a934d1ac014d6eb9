package knudsen

import "math"

/*
TubeVolume returns the inner volume of a tube.

	Args:
		length: cm
		diameter: cm

	Returns:
		volume, L
*/
func TubeVolume(length, diameter float64) float64 {
	r := 0.5 * diameter
	return length * r * r * math.Pi * litersPerCm3
}

// PumpoutTime returns the time to evacuate volume through conductance, s.
func PumpoutTime(volume, conductance float64) float64 {
	return volume / conductance
}

/*
PumpoutTimes estimates the pump-out time of tubes of several diameters.

	Args:
		dst: destination, allocated when nil, [n]
		pressure: pressure at which the conductance is taken, mbar
		length: tube length, cm
		diameters: tube inner diameters, cm, [n]

	Returns:
		pump-out time, s, [n]

	Notes:
		First-order estimate: the conductance is held at its value for
		pressure during the whole evacuation. This is only meaningful deep in
		molecular flow where the conductance no longer depends on pressure.
*/
func PumpoutTimes(dst []float64, pressure, length float64, diameters []float64) []float64 {
	dst = sized(dst, len(diameters))
	for i, d := range diameters {
		dst[i] = PumpoutTime(TubeVolume(length, d), Conductance(pressure, length, d))
	}
	return dst
}
