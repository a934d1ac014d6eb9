package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tubing_conductance/report"
)

func NewReportCommand(root *rootOptions) *cobra.Command {
	var casesPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print conductance, mass flow and gas cost of capillary leaks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			cases := report.DefaultCases()
			path := casesPath
			if path == "" {
				path = cfg.Report.Cases
			}
			if path != "" {
				log.Infof("Load report cases from `%s`", path)
				if cases, err = report.LoadCases(path); err != nil {
					return err
				}
			}

			return report.PrintAll(cmd.OutOrStdout(), cases)
		},
	}
	cmd.Flags().StringVar(&casesPath, "cases", "", "CSV file of cases (label,pressure_mbar,length_cm,diameter_cm,price_per_liter_atm)")
	return cmd
}
