package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgen-collapsible/pkg/editor"
	"github.com/goliatone/go-formgen-collapsible/pkg/prompt"
)

type editOptions struct {
	inputs         inputFlags
	output         string
	externalEditor bool
}

// newDriver is swapped in tests.
var newDriver = func(cmd *cobra.Command) prompt.Driver {
	return prompt.NewSurveyDriver(cmd.OutOrStdout())
}

func newEditCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit form data interactively, panel by panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, rootFlags, opts)
		},
	}

	opts.inputs.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the edited JSON here (stdout if empty)")
	cmd.Flags().BoolVar(&opts.externalEditor, "editor", false, "Edit raw JSON in $EDITOR")

	return cmd
}

func runEdit(cmd *cobra.Command, rootFlags *rootFlags, opts *editOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return newCommandError("edit", "configuring logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	f, err := opts.inputs.build(cmd.Context(), "edit", log)
	if err != nil {
		return err
	}

	session := prompt.NewSession(newDriver(cmd), prompt.WithExternalEditor(opts.externalEditor))
	data, err := session.Run(cmd.Context(), f)
	if err != nil {
		return newCommandError("edit", "running the editing session", err, "Press Ctrl+C only when you want to discard changes.")
	}

	text, err := editor.Pretty(data)
	if err != nil {
		return newCommandError("edit", "encoding result", err, "The edited data could not be encoded as JSON.")
	}
	if err := writeOutput(cmd, opts.output, []byte(text+"\n")); err != nil {
		return newCommandError("edit", "writing output", err, "Check the --output path.")
	}
	return nil
}
