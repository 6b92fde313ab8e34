package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgen-collapsible/internal/logger"
)

type rootFlags struct {
	logLevel string
	logHuman bool
}

func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: f.logHuman,
		Writer:        cmd.ErrOrStderr(),
	})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "formgen-panels",
		Short:         "Render and edit JSON data as collapsible schema-driven panels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", false, "Write human readable logs instead of JSON")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))

	return cmd
}
