// Package collapsible renders JSON-Schema described data as collapsible,
// editable panels. Object and array values render as fieldsets that can be
// collapsed, grow new elements and be rewritten as raw JSON; validation
// errors force the affected panels open.
//
// Most callers need RenderHTML, or NewForm when panels must stay mounted
// across interactions:
//
//	f, err := collapsible.NewForm(schema, data,
//		form.WithFormContext(&formcontext.Context{CollapsedList: []string{"root_meta"}}),
//	)
//	html, err := f.Render(ctx)
package collapsible
