package form

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgen-collapsible/pkg/errorschema"
	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
	"github.com/goliatone/go-formgen-collapsible/pkg/uischema"
)

type node struct {
	id       string
	name     string
	path     []string
	depth    int
	schema   *openapi3.Schema
	ui       uischema.UISchema
	value    any
	errs     errorschema.ErrorSchema
	required bool
	disabled bool
	readonly bool
}

type walkState struct {
	seen    map[string]struct{}
	outline []string
}

func (f *Form) walk(ctx context.Context) (string, error) {
	state := &walkState{seen: make(map[string]struct{})}
	root := node{
		id:       RootID,
		schema:   f.schema,
		ui:       f.ui,
		value:    f.data,
		errs:     f.errors,
		disabled: f.disabled,
	}
	content, err := f.renderNode(ctx, state, root)
	if err != nil {
		return "", err
	}

	for id := range f.mounted {
		if _, ok := state.seen[id]; !ok {
			delete(f.mounted, id)
			f.logger.Debug("form: unmounted panel " + id)
		}
	}
	f.outline = state.outline

	name := f.theme.Name
	variant := f.theme.Variant
	if f.theme.Config != nil && f.theme.Config.Theme != "" {
		name = f.theme.Config.Theme
	}
	return f.theme.Renderer.RenderForm(ctx, panels.FormProps{
		ID:         RootID,
		Content:    content,
		Theme:      name,
		Variant:    variant,
		CSSVars:    f.theme.CSSVars(),
		Stylesheet: f.theme.AssetURL(StylesheetAsset),
	})
}

func (f *Form) renderNode(ctx context.Context, state *walkState, n node) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n.disabled = n.disabled || n.ui.Bool("disabled", false)
	n.readonly = n.readonly || n.ui.Bool("readonly", false) || (n.schema != nil && n.schema.ReadOnly)

	var (
		content   string
		err       error
		composite bool
	)
	switch panels.SchemaType(n.schema) {
	case openapi3.TypeObject:
		composite = true
		content, err = f.renderObject(ctx, state, n)
	case openapi3.TypeArray:
		composite = true
		content, err = f.renderArray(ctx, state, n)
	default:
		content, err = renderControl(f.controls, f.widgets, control{
			id:       n.id,
			name:     fieldName(n.path),
			schema:   n.schema,
			ui:       n.ui,
			value:    n.value,
			required: n.required,
			disabled: n.disabled || n.readonly,
		})
	}
	if err != nil {
		return "", err
	}

	props := panels.FieldProps{
		ID:          n.id,
		Label:       label(n),
		Description: description(n),
		Help:        n.ui.String("help"),
		Content:     content,
		Required:    n.required,
		Hidden:      n.ui.Widget() == "hidden",
		Composite:   composite,
		FormContext: f.formContext,
	}
	if !composite {
		props.Errors = n.errs.Errors()
	}
	return f.theme.Templates.FieldTemplate(ctx, f.theme.Renderer, props)
}

func (f *Form) renderObject(ctx context.Context, state *walkState, n node) (string, error) {
	values, _ := n.value.(map[string]any)
	path := n.path

	props := f.panelProps(n)
	props.OnChange = func(value any) { f.setValue(path, value) }
	props.OnAddClick = func() { f.addProperty(path, n.schema) }
	panel, err := f.mountPanel(state, panels.KindObject, props, n)
	if err != nil {
		return "", err
	}

	required := make(map[string]bool, len(n.schema.Required))
	for _, name := range n.schema.Required {
		required[name] = true
	}

	names := propertyOrder(n.schema, n.ui, values)
	children := make([]panels.Element, 0, len(names))
	for _, name := range names {
		childSchema := propertySchema(n.schema, name)
		childUI := n.ui.Child(name)
		child := node{
			id:       n.id + "_" + name,
			name:     name,
			path:     appendPath(n.path, name),
			depth:    n.depth + 1,
			schema:   childSchema,
			ui:       childUI,
			value:    values[name],
			errs:     n.errs.Child(name),
			required: required[name],
			disabled: n.disabled,
			readonly: n.readonly,
		}
		content, err := f.renderNode(ctx, state, child)
		if err != nil {
			return "", err
		}
		children = append(children, panels.Element{
			Name:     name,
			Content:  content,
			Hidden:   childUI.Widget() == "hidden",
			Schema:   childSchema,
			UISchema: childUI,
		})
	}

	props.Children = children
	if err := panel.Update(props); err != nil {
		return "", err
	}
	return panel.Render(ctx)
}

func (f *Form) renderArray(ctx context.Context, state *walkState, n node) (string, error) {
	items, _ := n.value.([]any)
	path := n.path
	itemSchema := schemaOf(n.schema.Items)

	props := f.panelProps(n)
	props.CanAdd = panels.CanAddItem(n.schema, n.ui, n.value)
	props.OnChange = func(value any) { f.setValue(path, value) }
	props.OnAddClick = func() { f.addItem(path, itemSchema) }
	panel, err := f.mountPanel(state, panels.KindArray, props, n)
	if err != nil {
		return "", err
	}

	itemUI := n.ui.Items()
	children := make([]panels.Element, 0, len(items))
	for index, item := range items {
		key := strconv.Itoa(index)
		child := node{
			id:       n.id + "_" + key,
			name:     key,
			path:     appendPath(n.path, key),
			depth:    n.depth + 1,
			schema:   itemSchema,
			ui:       itemUI,
			value:    item,
			errs:     n.errs.Child(key),
			disabled: n.disabled,
			readonly: n.readonly,
		}
		content, err := f.renderNode(ctx, state, child)
		if err != nil {
			return "", err
		}
		children = append(children, panels.Element{
			Name:     key,
			Content:  content,
			Schema:   itemSchema,
			UISchema: itemUI,
		})
	}

	props.Children = children
	if err := panel.Update(props); err != nil {
		return "", err
	}
	return panel.Render(ctx)
}

func (f *Form) panelProps(n node) panels.Props {
	return panels.Props{
		ID:          n.id,
		Title:       label(n),
		Schema:      n.schema,
		UISchema:    n.ui,
		FormData:    n.value,
		ErrorSchema: n.errs,
		Required:    n.required,
		Disabled:    n.disabled,
		Readonly:    n.readonly,
		FormContext: f.formContext,
	}
}

// mountPanel returns the panel mounted under props.ID, mounting a fresh one
// when the id is new or now holds a different kind of value. The caller
// applies the final props through Update once children are rendered.
func (f *Form) mountPanel(state *walkState, kind panels.Kind, props panels.Props, n node) (panels.Panel, error) {
	if _, dup := state.seen[props.ID]; dup {
		return nil, fmt.Errorf("form: duplicate panel id %q", props.ID)
	}
	state.seen[props.ID] = struct{}{}
	state.outline = append(state.outline, props.ID)

	if existing, ok := f.mounted[props.ID]; ok && existing.panel.Kind() == kind {
		existing.path = n.path
		existing.depth = n.depth
		existing.title = props.Title
		return existing.panel, nil
	}

	template := f.theme.Templates.ObjectFieldTemplate
	if kind == panels.KindArray {
		template = f.theme.Templates.ArrayFieldTemplate
	}
	if template == nil {
		return nil, fmt.Errorf("form: theme %q has no %s template", f.theme.Name, kind)
	}
	panel := template(f.theme.Renderer, props)
	f.mounted[props.ID] = &mountedPanel{panel: panel, path: n.path, depth: n.depth, title: props.Title}
	f.logger.Debug("form: mounted " + string(kind) + " panel " + props.ID)
	return panel, nil
}

func (f *Form) addProperty(path []string, schema *openapi3.Schema) {
	current, _ := getPath(f.data, path)
	values, _ := current.(map[string]any)
	if values == nil {
		values = map[string]any{}
	}
	key := panels.NewPropertyName(values)
	value := panels.DefaultValue(schemaOf(schema.AdditionalProperties.Schema))
	if value == nil {
		value = ""
	}
	values[key] = value
	f.setValue(path, values)
}

func (f *Form) addItem(path []string, itemSchema *openapi3.Schema) {
	current, _ := getPath(f.data, path)
	items, _ := current.([]any)
	items = append(items, panels.DefaultValue(itemSchema))
	f.setValue(path, items)
}

// propertyOrder lists declared properties first, in ui:order when given and
// alphabetically otherwise, followed by additional properties present in
// the data.
func propertyOrder(schema *openapi3.Schema, ui uischema.UISchema, values map[string]any) []string {
	declared := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		declared = append(declared, name)
	}
	sort.Strings(declared)

	var extra []string
	additional := schema.AdditionalProperties
	if additional.Schema != nil || (additional.Has != nil && *additional.Has) {
		for name := range values {
			if _, ok := schema.Properties[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
	}

	order, _ := ui.Options()["order"].([]any)
	if len(order) == 0 {
		return append(declared, extra...)
	}
	out := make([]string, 0, len(declared)+len(extra))
	placed := make(map[string]bool, len(order))
	for _, entry := range order {
		name, _ := entry.(string)
		if _, ok := schema.Properties[name]; !ok || placed[name] {
			continue
		}
		placed[name] = true
		out = append(out, name)
	}
	for _, name := range declared {
		if !placed[name] {
			out = append(out, name)
		}
	}
	return append(out, extra...)
}

func propertySchema(schema *openapi3.Schema, name string) *openapi3.Schema {
	if ref, ok := schema.Properties[name]; ok {
		if resolved := schemaOf(ref); resolved != nil {
			return resolved
		}
	}
	if additional := schemaOf(schema.AdditionalProperties.Schema); additional != nil {
		return additional
	}
	return openapi3.NewStringSchema()
}

func schemaOf(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func label(n node) string {
	if n.schema != nil && strings.TrimSpace(n.schema.Title) != "" {
		return n.schema.Title
	}
	return n.name
}

func description(n node) string {
	if n.schema == nil {
		return ""
	}
	return n.schema.Description
}

func fieldName(path []string) string {
	if len(path) == 0 {
		return RootID
	}
	return strings.Join(path, ".")
}

func appendPath(path []string, segment string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, segment)
}
