package main

import (
	"github.com/spf13/cobra"
)

type renderOptions struct {
	inputs inputFlags
	output string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a schema and its data as collapsible HTML panels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	opts.inputs.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return newCommandError("render", "configuring logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	f, err := opts.inputs.build(cmd.Context(), "render", log)
	if err != nil {
		return err
	}

	html, err := f.Render(cmd.Context())
	if err != nil {
		return newCommandError("render", "rendering panels", err, "Check template overrides passed with --templates or the theme manifest.")
	}
	if err := writeOutput(cmd, opts.output, html); err != nil {
		return newCommandError("render", "writing output", err, "Check the --output path.")
	}
	log.WithFields(map[string]any{"bytes": len(html)}).Info("rendered form")
	return nil
}
