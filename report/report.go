// Package report formats the conductance, mass flow and gas cost of a
// tube as a human readable text report.
package report

import (
	"fmt"
	"io"

	"tubing_conductance/knudsen"
)

// Case is one tube and gas combination to report on.
type Case struct {
	Label    string  `csv:"label"`
	Pressure float64 `csv:"pressure_mbar"`       // mbar
	Length   float64 `csv:"length_cm"`           // cm
	Diameter float64 `csv:"diameter_cm"`         // cm
	Price    float64 `csv:"price_per_liter_atm"` // dollars per liter atm
}

// DefaultCases returns the neon and xenon leak cases through a 150 µm
// capillary.
func DefaultCases() []Case {
	return []Case{
		{Label: "Neon (best case)", Pressure: 200, Length: 3, Diameter: 0.015, Price: 0.5},
		{Label: "Neon (worst case)", Pressure: 1000, Length: 1.5, Diameter: 0.015, Price: 1.0},
		{Label: "Xenon (best case)", Pressure: 15, Length: 3, Diameter: 0.015, Price: 25},
		{Label: "Xenon (worst case)", Pressure: 40, Length: 1.5, Diameter: 0.015, Price: 35},
	}
}

/*
PrintConductances writes the inputs of c and the throughput and cost
computed from them.

	Notes:
		Diameter and length are shown in m, all other values in the units
		they are computed in.
*/
func PrintConductances(w io.Writer, c Case) error {
	tp := knudsen.NewThroughput(c.Pressure, c.Length, c.Diameter, c.Price)

	_, err := fmt.Fprintf(w, "%s\n"+
		"Inputs\n"+
		"  Diameter: %.2e m\n"+
		"  Length: %.2e m\n"+
		"  Pressure: %.2e mbar\n"+
		"  Price: %.4f dollars per liter atm\n"+
		"Outputs\n"+
		"  Conductance: %.2e liters/sec\n"+
		"  Mass flow: %.2e mbar L/sec\n"+
		"  Mass flow: %.2e atm L/sec\n"+
		"  Mass flow: %.2e atm L/hour\n"+
		"  Cost: %.2e dollars per sec\n"+
		"  Cost: %.2e dollars per hour.\n\n",
		c.Label,
		knudsen.CmToM(c.Diameter), knudsen.CmToM(c.Length), c.Pressure, c.Price,
		tp.Conductance,
		tp.MassFlow,
		tp.AtmLitersPerSec,
		tp.AtmLitersPerHour,
		tp.CostPerSec,
		tp.CostPerHour,
	)
	return err
}

// PrintAll writes one report per case.
func PrintAll(w io.Writer, cases []Case) error {
	for _, c := range cases {
		if err := PrintConductances(w, c); err != nil {
			return fmt.Errorf("report %q: %w", c.Label, err)
		}
	}
	return nil
}
