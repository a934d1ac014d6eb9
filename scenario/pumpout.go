package scenario

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"tubing_conductance/chart"
	"tubing_conductance/config"
	"tubing_conductance/knudsen"
	"tubing_conductance/recorder"
)

const diameterLabel = "Tube diameter (µm)"

/*
Pumpout evaluates the conductance and the first-order pump-out time of a
capillary over the configured diameter range.

	Args:
		cfg: tube length, pressure and diameter range
		rec: receives every computed point, may be nil

	Returns:
		two stacked panels: conductance (linear) and pump-out time (log)
		against diameter in µm
*/
func Pumpout(cfg config.PumpoutConfig, rec *recorder.Recorder) chart.Figure {
	diamMicron := knudsen.Linspace(cfg.DiameterMin, cfg.DiameterMax, cfg.Points)
	diamCm := make([]float64, len(diamMicron))
	floats.ScaleTo(diamCm, knudsen.MicronToCm(1), diamMicron)

	log.WithFields(log.Fields{
		"length":   cfg.Length,
		"pressure": cfg.Pressure,
		"points":   len(diamCm),
	}).Info("calculate pumpout time")

	conds := knudsen.ConductanceOverDiameter(nil, cfg.Pressure, cfg.Length, diamCm)
	pumpout := knudsen.PumpoutTimes(nil, cfg.Pressure, cfg.Length, diamCm)

	if rec != nil {
		rec.RecordOverDiameter("pumpout", cfg.Pressure, cfg.Length, diamCm, conds)
	}

	top := chart.Panel{
		X:      chart.Axis{Label: diameterLabel},
		Y:      chart.Axis{Label: "Conductance (L/s)"},
		Grid:   true,
		Series: []chart.Series{{X: diamMicron, Y: conds}},
	}
	bottom := chart.Panel{
		X:      chart.Axis{Label: diameterLabel},
		Y:      chart.Axis{Label: "Time for pumpout (sec)", Scale: chart.Log},
		Grid:   true,
		Series: []chart.Series{{X: diamMicron, Y: pumpout}},
		RefLines: []chart.RefLine{
			{Orientation: chart.Vertical, Value: cfg.Marker, Color: "r", Dash: chart.Dashed},
		},
	}

	return chart.Figure{Width: cfg.Width, Height: cfg.Height, Panels: []chart.Panel{top, bottom}}
}
