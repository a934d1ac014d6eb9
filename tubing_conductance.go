package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tubing_conductance/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// outputOptions are shared by the commands that write files.
type outputOptions struct {
	dir string
	csv bool
}

func (o *rootOptions) config() (*config.Config, error) {
	if o.configPath != "" {
		log.Infof("Load configuration from `%s`", o.configPath)
	}
	return config.Load(o.configPath)
}

func (o *outputOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.dir, "output", "o", ".", "output directory")
	fs.BoolVar(&o.csv, "csv", false, "also write the computed points as CSV")
}

// prepare creates the output directory when it does not exist yet.
func (o *outputOptions) prepare() error {
	if _, err := os.Stat(o.dir); os.IsNotExist(err) {
		log.Infof("create output directory `%s`", o.dir)
		return os.MkdirAll(o.dir, 0755)
	} else if err != nil {
		return err
	}
	return nil
}

// NewRootCommand holds every calculation as a sub-command of one binary.
func NewRootCommand() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tubing_conductance <command> [flags]",
		Short:         "Conductance, gas cost and pump-out time of vacuum tubing (Knudsen equation).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "ini file with sweep ranges, tube sizes and pumps")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log", "error", "log level (debug, info, warn, error)")

	cmd.AddCommand(NewReportCommand(o))
	cmd.AddCommand(NewTubingCommand(o))
	cmd.AddCommand(NewPumpoutCommand(o))
	return cmd
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	start := time.Now()

	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
