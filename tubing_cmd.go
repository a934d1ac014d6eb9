package main

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tubing_conductance/chart"
	"tubing_conductance/recorder"
	"tubing_conductance/scenario"
)

func NewTubingCommand(root *rootOptions) *cobra.Command {
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "tubing",
		Short: "Chart the conductance of KF tubing against pressure.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			if err := out.prepare(); err != nil {
				return err
			}

			var rec *recorder.Recorder
			if out.csv {
				rec = recorder.NewRecorder(cfg.Tubing.PressurePoints * len(cfg.Tubing.Lengths) * len(cfg.Tubing.Flanges))
			}

			fig, err := scenario.Tubing(cfg.Tubing, cfg.Pumps, rec)
			if err != nil {
				return err
			}

			path := filepath.Join(out.dir, cfg.Tubing.Output)
			return save(fig, rec, path)
		},
	}
	out.addFlags(cmd.Flags())
	return cmd
}

// save renders fig to path and, when rec is set, its points next to it
// with a .csv extension.
func save(fig chart.Figure, rec *recorder.Recorder, path string) error {
	log.Infof("Save chart to `%s`", path)
	if err := chart.Render(fig, path); err != nil {
		return err
	}

	if rec == nil {
		return nil
	}
	return rec.Save(strings.TrimSuffix(path, filepath.Ext(path)) + ".csv")
}
