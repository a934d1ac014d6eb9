// Package recorder keeps every point computed for a chart and writes them
// out as CSV.
package recorder

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"tubing_conductance/knudsen"
)

// Row is one evaluated tube.
type Row struct {
	Series       string  `csv:"series"`
	PressureMbar float64 `csv:"pressure_mbar"`
	PressureTorr float64 `csv:"pressure_torr"`
	LengthCm     float64 `csv:"length_cm"`
	DiameterCm   float64 `csv:"diameter_cm"`
	Conductance  float64 `csv:"conductance_l_s"`
	Regime       string  `csv:"regime"`
	VolumeL      float64 `csv:"volume_l"`
	PumpoutS     float64 `csv:"pumpout_s"`
}

type Recorder struct {
	rows []*Row
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{rows: make([]*Row, 0, capacity)}
}

/*
Record stores one tube and the quantities derived from its conductance.

	Args:
		series: name of the curve the point belongs to
		pressure: mbar
		length: cm
		diameter: cm
		conductance: L/s
*/
func (r *Recorder) Record(series string, pressure, length, diameter, conductance float64) {
	volume := knudsen.TubeVolume(length, diameter)
	r.rows = append(r.rows, &Row{
		Series:       series,
		PressureMbar: pressure,
		PressureTorr: knudsen.MbarToTorr(pressure),
		LengthCm:     length,
		DiameterCm:   diameter,
		Conductance:  conductance,
		Regime:       string(knudsen.FlowRegime(pressure, diameter)),
		VolumeL:      volume,
		PumpoutS:     knudsen.PumpoutTime(volume, conductance),
	})
}

// RecordOverPressure stores a pressure sweep of one tube, [n]
func (r *Recorder) RecordOverPressure(series string, pressures []float64, length, diameter float64, conds []float64) {
	for i, p := range pressures {
		r.Record(series, p, length, diameter, conds[i])
	}
}

// RecordOverDiameter stores a diameter sweep at one pressure, [n]
func (r *Recorder) RecordOverDiameter(series string, pressure, length float64, diameters, conds []float64) {
	for i, d := range diameters {
		r.Record(series, pressure, length, d, conds[i])
	}
}

func (r *Recorder) Len() int {
	return len(r.rows)
}

func (r *Recorder) Rows() []*Row {
	return r.rows
}

// Export writes the recorded rows as CSV with a header line.
func (r *Recorder) Export(w io.Writer) error {
	return gocsv.Marshal(r.rows, w)
}

// Save writes the recorded rows to a CSV file at path.
func (r *Recorder) Save(path string) error {
	log.WithFields(log.Fields{
		"path": path,
		"rows": len(r.rows),
	}).Info("save calculation results")

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Export(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
