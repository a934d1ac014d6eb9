package knudsen

// standard atmosphere, mbar
const atmMbar = 1013.25

// seconds in one hour, s/h
const secondsPerHour = 3600.0

// volume conversion, L/cm3
const litersPerCm3 = 1e-3

// Knudsen equation, viscous term coefficient
const viscousCoeff = 135.0

// Knudsen equation, molecular term coefficient
const molecularCoeff = 12.1

// Knudsen equation, transition coefficients, 1/(mbar cm)
const (
	knudsenNum = 192.0
	knudsenDen = 237.0
)
