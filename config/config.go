// Package config loads the sweep ranges, tube sizes and pump reference
// lines used by the charts and the report.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Tubing  TubingConfig
	Pumpout PumpoutConfig
	Report  ReportConfig
	Pumps   []Pump
}

// TubingConfig is the conductance of KF tubing over a pressure range.
type TubingConfig struct {
	PressureMin    float64   // mbar
	PressureMax    float64   // mbar
	PressurePoints int       // samples
	Lengths        []float64 // cm
	Colors         []string  // one per length
	Flanges        []string  // KF sizes
	Output         string    // file name
	Width, Height  float64   // inch
}

// PumpoutConfig is the pump-out time of a capillary over a diameter range.
type PumpoutConfig struct {
	Length        float64 // cm
	Pressure      float64 // mbar
	DiameterMin   float64 // µm
	DiameterMax   float64 // µm
	Points        int     // samples
	Marker        float64 // µm
	Output        string  // file name
	Width, Height float64 // inch
}

type ReportConfig struct {
	Cases string // CSV path, empty for the built-in cases
}

// Pump is a reference pumping speed drawn across the tubing chart.
type Pump struct {
	Name       string
	Throughput float64 // L/s, where the line is drawn
	Rated      float64 // L/s shown in the legend, zero for Throughput
	Color      string
	Width      float64 // points
}

// Label is the legend text of the pump.
func (p Pump) Label() string {
	speed := p.Throughput
	if p.Rated != 0 {
		speed = p.Rated
	}
	return fmt.Sprintf("%g L/s (%s)", speed, p.Name)
}

/*
Load reads the configuration file at path.

	Args:
		path: ini file; when empty the built-in defaults are returned

	Notes:
		Keys missing from the file fall back to their defaults.
		A relative report.cases path is relative to the config file.
*/
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := loadCfg(file)
	if err != nil {
		return nil, err
	}

	if cases := cfg.Report.Cases; cases != "" && !filepath.IsAbs(cases) {
		cfg.Report.Cases = filepath.Join(filepath.Dir(path), cases)
	}
	return cfg, nil
}

// Default returns the configuration that reproduces the reference charts.
func Default() *Config {
	cfg, err := loadCfg(ini.Empty())
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadCfg(file *ini.File) (*Config, error) {
	tubing := file.Section("tubing")
	pumpout := file.Section("pumpout")

	cfg := &Config{
		Tubing: TubingConfig{
			PressureMin:    tubing.Key("pressure_min").MustFloat64(1e-3),
			PressureMax:    tubing.Key("pressure_max").MustFloat64(1e3),
			PressurePoints: tubing.Key("pressure_points").MustInt(100),
			Lengths:        floatList(tubing, "lengths", []float64{100, 1000}),
			Colors:         stringList(tubing, "colors", []string{"red", "blue"}),
			Flanges:        stringList(tubing, "flanges", []string{"KF25", "KF40", "KF50"}),
			Output:         tubing.Key("output").MustString("Tubing conductance 1.1.pdf"),
			Width:          tubing.Key("width").MustFloat64(10),
			Height:         tubing.Key("height").MustFloat64(7),
		},
		Pumpout: PumpoutConfig{
			Length:      pumpout.Key("length").MustFloat64(6),
			Pressure:    pumpout.Key("pressure").MustFloat64(1e-3),
			DiameterMin: pumpout.Key("diameter_min").MustFloat64(1),
			DiameterMax: pumpout.Key("diameter_max").MustFloat64(100),
			Points:      pumpout.Key("points").MustInt(200),
			Marker:      pumpout.Key("marker").MustFloat64(11),
			Output:      pumpout.Key("output").MustString("pumpout of tubes.png"),
			Width:       pumpout.Key("width").MustFloat64(8),
			Height:      pumpout.Key("height").MustFloat64(8),
		},
		Report: ReportConfig{
			Cases: file.Section("report").Key("cases").String(),
		},
	}

	if cfg.Tubing.PressurePoints < 2 {
		return nil, fmt.Errorf("tubing.pressure_points must be at least 2, got %d", cfg.Tubing.PressurePoints)
	}
	if cfg.Pumpout.Points < 2 {
		return nil, fmt.Errorf("pumpout.points must be at least 2, got %d", cfg.Pumpout.Points)
	}

	pumps, err := loadPumps(file)
	if err != nil {
		return nil, err
	}
	cfg.Pumps = pumps

	return cfg, nil
}

func defaultPumps() []Pump {
	return []Pump{
		{Name: "HiPace 300", Throughput: 260, Color: "m", Width: 2},
		{Name: "HiPace 80", Throughput: 71, Color: "m", Width: 1},
		{Name: "ACP 28", Throughput: 7.8, Color: "k", Width: 2},
		{Name: "ACP 15", Throughput: 4, Rated: 4.2, Color: "k", Width: 1},
	}
}

/*
loadPumps reads the [pumps] section.

	Notes:
		Each key is a pump name and each value "throughput, color, width, rated",
		e.g. "HiPace 300 = 260, m, 2". Color, width and the rated speed
		printed in the legend may be omitted.
*/
func loadPumps(file *ini.File) ([]Pump, error) {
	if !file.HasSection("pumps") {
		return defaultPumps(), nil
	}

	var pumps []Pump
	for _, key := range file.Section("pumps").Keys() {
		fields := key.Strings(",")
		if len(fields) == 0 {
			return nil, fmt.Errorf("pumps.%s: missing throughput", key.Name())
		}

		throughput, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("pumps.%s: %w", key.Name(), err)
		}
		pump := Pump{Name: key.Name(), Throughput: throughput, Color: "k", Width: 1}
		if len(fields) > 1 {
			pump.Color = fields[1]
		}
		if len(fields) > 2 {
			if pump.Width, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("pumps.%s: %w", key.Name(), err)
			}
		}
		if len(fields) > 3 {
			if pump.Rated, err = strconv.ParseFloat(fields[3], 64); err != nil {
				return nil, fmt.Errorf("pumps.%s: %w", key.Name(), err)
			}
		}
		pumps = append(pumps, pump)
	}
	return pumps, nil
}

func floatList(sec *ini.Section, name string, def []float64) []float64 {
	if !sec.HasKey(name) {
		return def
	}
	vals := sec.Key(name).ValidFloat64s(",")
	if len(vals) == 0 {
		log.WithField("key", sec.Name()+"."+name).Warn("no valid numbers, using defaults")
		return def
	}
	return vals
}

func stringList(sec *ini.Section, name string, def []string) []string {
	if !sec.HasKey(name) {
		return def
	}
	return sec.Key(name).Strings(",")
}
