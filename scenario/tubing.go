// Package scenario builds the conductance and pump-out charts from a
// configuration.
package scenario

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"tubing_conductance/chart"
	"tubing_conductance/config"
	"tubing_conductance/knudsen"
	"tubing_conductance/recorder"
)

const tubingTitle = "Conductance of tubing using Knudsen equation\n(valid for viscous and molecular flow)"

/*
Tubing evaluates the conductance of every tube length and flange size over
the configured pressure range.

	Args:
		cfg: pressure range and tube sizes
		pumps: pumping speeds drawn as horizontal reference lines
		rec: receives every computed point, may be nil

	Returns:
		log-log chart of conductance against pressure
*/
func Tubing(cfg config.TubingConfig, pumps []config.Pump, rec *recorder.Recorder) (chart.Figure, error) {
	flanges := make([]knudsen.Flange, len(cfg.Flanges))
	for i, name := range cfg.Flanges {
		f, err := knudsen.ParseFlange(name)
		if err != nil {
			return chart.Figure{}, err
		}
		flanges[i] = f
	}

	pressures := knudsen.LogPressures(cfg.PressureMin, cfg.PressureMax, cfg.PressurePoints)

	log.WithFields(log.Fields{
		"pressure_min": cfg.PressureMin,
		"pressure_max": cfg.PressureMax,
		"points":       len(pressures),
		"lengths":      cfg.Lengths,
		"flanges":      cfg.Flanges,
	}).Info("calculate tubing conductance")

	panel := chart.Panel{
		Title: tubingTitle,
		X:     chart.Axis{Label: "Pressure (mbar)", Scale: chart.Log},
		Y:     chart.Axis{Label: "Conductance (L/s)", Scale: chart.Log},
	}

	for i, length := range cfg.Lengths {
		color := "black"
		if i < len(cfg.Colors) {
			color = cfg.Colors[i]
		}

		for _, f := range flanges {
			d := f.Diameter()
			label := fmt.Sprintf("%.1f cm diameter (%s), %.0f meter length", d, f, length/100)
			conds := knudsen.ConductanceOverPressure(nil, pressures, length, d)

			panel.Series = append(panel.Series, chart.Series{
				X:     pressures,
				Y:     conds,
				Label: label,
				Color: color,
				Dash:  chart.Dash(f.Style()),
			})
			if rec != nil {
				rec.RecordOverPressure(label, pressures, length, d, conds)
			}
		}
	}

	for _, p := range pumps {
		panel.RefLines = append(panel.RefLines, chart.RefLine{
			Orientation: chart.Horizontal,
			Value:       p.Throughput,
			Label:       p.Label(),
			Color:       p.Color,
			Alpha:       0.2,
			Width:       p.Width,
		})
	}

	return chart.Figure{Width: cfg.Width, Height: cfg.Height, Panels: []chart.Panel{panel}}, nil
}
