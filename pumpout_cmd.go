package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tubing_conductance/recorder"
	"tubing_conductance/scenario"
)

func NewPumpoutCommand(root *rootOptions) *cobra.Command {
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "pumpout",
		Short: "Chart the conductance and pump-out time of a capillary against its diameter.",
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
				rec = recorder.NewRecorder(cfg.Pumpout.Points)
			}

			fig := scenario.Pumpout(cfg.Pumpout, rec)
			return save(fig, rec, filepath.Join(out.dir, cfg.Pumpout.Output))
		},
	}
	out.addFlags(cmd.Flags())
	return cmd
}
