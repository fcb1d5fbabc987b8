package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krishi/config"
	"krishi/pkg/logging"
)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand starts from.
type env struct {
	cfg config.AppConfig
	log *zap.Logger
}

func newRootCmd(load func() config.AppConfig) *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "krishi",
		Short:         "Agricultural assistant API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e.cfg = load()
			log, err := logging.New(e.cfg.LogLevel, e.cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			e.log = log
			e.log.Debug("config loaded", zap.Any("config", e.cfg.Redacted()))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}
	root.AddCommand(newServeCmd(e), newMigrateCmd(e))
	return root
}
