package main

import (
	"context"
	"os"

	json "github.com/goccy/go-json"
	gotheme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	collapsible "github.com/goliatone/go-formgen-collapsible"
	"github.com/goliatone/go-formgen-collapsible/internal/logger"
	"github.com/goliatone/go-formgen-collapsible/pkg/errorschema"
	"github.com/goliatone/go-formgen-collapsible/pkg/form"
	"github.com/goliatone/go-formgen-collapsible/pkg/formcontext"
	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
	"github.com/goliatone/go-formgen-collapsible/pkg/theme"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

// inputFlags are shared by every command that builds a form.
type inputFlags struct {
	schemaPath    string
	component     string
	dataPath      string
	uiPath        string
	errorsPath    string
	contextPath   string
	manifestPaths []string
	themeName     string
	variant       string
	templatesDir  string
	disabled      bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schemaPath, "schema", "s", "", "JSON Schema or OpenAPI document (JSON or YAML)")
	cmd.Flags().StringVar(&f.component, "component", "", "Schema name under components.schemas when --schema is an OpenAPI document")
	cmd.Flags().StringVarP(&f.dataPath, "data", "d", "", "Form data file")
	cmd.Flags().StringVar(&f.uiPath, "ui", "", "UI schema file")
	cmd.Flags().StringVar(&f.errorsPath, "errors", "", "Error report: nested error schema or flat field paths")
	cmd.Flags().StringVar(&f.contextPath, "context", "", "Form context file (colSpan, labelAlign, rowGutter, collapsedList)")
	cmd.Flags().StringSliceVar(&f.manifestPaths, "theme-manifest", nil, "Theme manifest files (repeatable)")
	cmd.Flags().StringVar(&f.themeName, "theme", "", "Theme name from the loaded manifests")
	cmd.Flags().StringVar(&f.variant, "variant", "", "Theme variant")
	cmd.Flags().StringVar(&f.templatesDir, "templates", "", "Directory overriding the embedded templates")
	cmd.Flags().BoolVar(&f.disabled, "disabled", false, "Render every control disabled")
	_ = cmd.MarkFlagRequired("schema")
}

func (f *inputFlags) build(ctx context.Context, operation string, log *logger.Logger) (*form.Form, error) {
	schema, err := collapsible.LoadSchemaFile(ctx, f.schemaPath, f.component)
	if err != nil {
		return nil, newCommandError(operation, "loading schema", err, "Pass a JSON Schema file, or an OpenAPI document with --component.")
	}

	var data any
	if f.dataPath != "" {
		if data, err = collapsible.LoadDocument(f.dataPath); err != nil {
			return nil, newCommandError(operation, "loading data", err, "Check that --data points to valid JSON or YAML.")
		}
	}

	options := []form.Option{form.WithLogger(log), form.WithDisabled(f.disabled)}

	if f.uiPath != "" {
		raw, err := os.ReadFile(f.uiPath)
		if err != nil {
			return nil, newCommandError(operation, "reading ui schema", err, "Check the --ui path.")
		}
		ui, err := uischema.Parse(raw, f.uiPath)
		if err != nil {
			return nil, newCommandError(operation, "parsing ui schema", err, "UI schemas are JSON or YAML objects.")
		}
		options = append(options, form.WithUISchema(ui))
	}

	if f.errorsPath != "" {
		report, err := loadErrors(f.errorsPath)
		if err != nil {
			return nil, newCommandError(operation, "loading error report", err, "Use {\"field\": {\"__errors\": [...]}} or {\"field.path\": [...]}.")
		}
		options = append(options, form.WithErrors(report))
	}

	if f.contextPath != "" {
		fc, err := formcontext.LoadFile(f.contextPath)
		if err != nil {
			return nil, newCommandError(operation, "loading form context", err, "Check labelAlign, rowGutter and colSpan values.")
		}
		options = append(options, form.WithFormContext(fc))
	}

	themeOption, err := f.theme()
	if err != nil {
		return nil, newCommandError(operation, "resolving theme", err, "Check --theme-manifest, --theme and --variant.")
	}
	options = append(options, themeOption)

	built, err := form.New(schema, data, options...)
	if err != nil {
		return nil, newCommandError(operation, "building form", err, "Run with --log-level debug for details.")
	}
	return built, nil
}

func (f *inputFlags) theme() (form.Option, error) {
	var options []theme.Option
	if f.templatesDir != "" {
		options = append(options, theme.WithRendererOptions(panels.WithTemplatesDir(f.templatesDir)))
	}
	if len(f.manifestPaths) == 0 {
		th, err := theme.Generate(options...)
		if err != nil {
			return nil, err
		}
		return form.WithTheme(th), nil
	}

	manifests := make([]*gotheme.Manifest, 0, len(f.manifestPaths))
	for _, path := range f.manifestPaths {
		manifest, err := theme.LoadManifest(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, manifest)
	}
	selector, err := theme.NewManifestSelector(f.themeName, f.variant, manifests...)
	if err != nil {
		return nil, err
	}
	return collapsible.WithThemeSelector(selector, f.themeName, f.variant, options...)
}

// loadErrors accepts a nested error schema or a flat map of dotted field
// paths to messages.
func loadErrors(path string) (errorschema.ErrorSchema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var flat map[string][]string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return errorschema.FromFieldErrors(flat), nil
	}
	return errorschema.Parse(raw)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
