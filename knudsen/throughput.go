package knudsen

// Throughput holds the flow and cost of gas leaking through one tube.
type Throughput struct {
	Conductance      float64 // L/s
	MassFlow         float64 // mbar L/s
	AtmLitersPerSec  float64 // atm L/s
	AtmLitersPerHour float64 // atm L/h
	CostPerSec       float64 // dollars/s
	CostPerHour      float64 // dollars/h
}

/*
NewThroughput evaluates the conductance of a tube and the quantities
derived from it.

	Args:
		pressure: pressure drop across the tube, mbar
		length: tube length, cm
		diameter: tube inner diameter, cm
		price: gas price, dollars per liter atm
*/
func NewThroughput(pressure, length, diameter, price float64) Throughput {
	c := Conductance(pressure, length, diameter)
	atm := AtmLitersPerSec(c, pressure)
	cost := CostPerSec(atm, price)

	return Throughput{
		Conductance:      c,
		MassFlow:         MassFlow(c, pressure),
		AtmLitersPerSec:  atm,
		AtmLitersPerHour: atm * secondsPerHour,
		CostPerSec:       cost,
		CostPerHour:      CostPerHour(cost),
	}
}

// MassFlow returns the throughput, mbar L/s.
func MassFlow(conductance, pressure float64) float64 {
	return conductance * pressure
}

// AtmLitersPerSec returns the throughput normalized to one standard
// atmosphere, atm L/s.
func AtmLitersPerSec(conductance, pressure float64) float64 {
	return conductance * pressure / atmMbar
}

// CostPerSec returns the gas cost, dollars/s.
func CostPerSec(atmLitersPerSec, price float64) float64 {
	return atmLitersPerSec * price
}

// CostPerHour returns the gas cost, dollars/h.
func CostPerHour(costPerSec float64) float64 {
	return costPerSec * secondsPerHour
}
