package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formgen-collapsible/pkg/form"
)

type inspectOptions struct {
	inputs inputFlags
	plain  bool
}

var (
	inspectTitleStyle    = lipgloss.NewStyle().Bold(true)
	inspectExpandedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inspectCollapsed     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	inspectForcedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	inspectBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func newInspectCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the panel outline with collapse and error state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, rootFlags, opts)
		},
	}

	opts.inputs.register(cmd)
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable borders and colours")

	return cmd
}

func runInspect(cmd *cobra.Command, rootFlags *rootFlags, opts *inspectOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return newCommandError("inspect", "configuring logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	f, err := opts.inputs.build(cmd.Context(), "inspect", log)
	if err != nil {
		return err
	}
	infos, err := f.Panels()
	if err != nil {
		return newCommandError("inspect", "listing panels", err, "Run with --log-level debug for details.")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderOutline(infos, opts.plain))
	return err
}

func renderOutline(infos []form.PanelInfo, plain bool) string {
	lines := make([]string, 0, len(infos)+1)
	lines = append(lines, styled(inspectTitleStyle, fmt.Sprintf("%d panels", len(infos)), plain))
	for _, info := range infos {
		state := styled(inspectCollapsed, "collapsed", plain)
		if info.Expanded {
			state = styled(inspectExpandedStyle, "expanded", plain)
		}
		line := fmt.Sprintf("%s%s %s [%s] %s", strings.Repeat("  ", info.Depth), info.ID, info.Kind, info.Path, state)
		if info.Forced {
			line += " " + styled(inspectForcedStyle, "errors", plain)
		}
		if info.CanAdd {
			line += " +"
		}
		lines = append(lines, line)
	}
	body := strings.Join(lines, "\n")
	if plain {
		return body
	}
	return inspectBoxStyle.Render(body)
}

func styled(style lipgloss.Style, text string, plain bool) string {
	if plain {
		return text
	}
	return style.Render(text)
}
