package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formgen-collapsible/pkg/form"
)

// Host is the slice of form.Form a session drives.
type Host interface {
	Panels() ([]form.PanelInfo, error)
	Info(id string) (form.PanelInfo, error)
	Toggle(id string, expanded bool) (bool, error)
	Add(id string) error
	OpenEditor(id string) error
	SetDraft(id, text string) error
	ConfirmEdit(id string) error
	CancelEdit(id string) error
	Data() any
}

var _ Host = (*form.Form)(nil)

// Menu labels.
const (
	actionDone     = "Done"
	actionBack     = "Back"
	actionExpand   = "Expand"
	actionCollapse = "Collapse"
	actionAdd      = "Add"
	actionEdit     = "Edit as JSON"
)

// Option configures a Session.
type Option func(*Session)

// WithExternalEditor edits JSON in $EDITOR instead of inline lines.
func WithExternalEditor(enabled bool) Option {
	return func(s *Session) {
		s.externalEditor = enabled
	}
}

// WithPageSize limits how many panels the picker shows at once.
func WithPageSize(size int) Option {
	return func(s *Session) {
		s.pageSize = size
	}
}

// Session runs the interactive loop over one form.
type Session struct {
	driver         Driver
	externalEditor bool
	pageSize       int
}

// NewSession builds a session on driver.
func NewSession(driver Driver, options ...Option) *Session {
	s := &Session{driver: driver, pageSize: 12}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run loops until the user picks Done and returns the edited data.
func (s *Session) Run(ctx context.Context, host Host) (any, error) {
	if s.driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}
	for {
		infos, err := host.Panels()
		if err != nil {
			return nil, err
		}
		options := make([]string, 0, len(infos)+1)
		for _, info := range infos {
			options = append(options, Describe(info))
		}
		options = append(options, actionDone)

		choice, err := s.driver.Select(ctx, SelectConfig{
			Message:  "Panel",
			Options:  options,
			PageSize: s.pageSize,
		})
		if err != nil {
			return nil, err
		}
		if choice < 0 || choice >= len(infos) {
			return host.Data(), nil
		}
		if err := s.panelMenu(ctx, host, infos[choice].ID); err != nil {
			return nil, err
		}
	}
}

func (s *Session) panelMenu(ctx context.Context, host Host, id string) error {
	info, err := host.Info(id)
	if err != nil {
		return err
	}

	var actions []string
	if info.Expanded {
		actions = append(actions, actionCollapse)
	} else {
		actions = append(actions, actionExpand)
	}
	if info.CanAdd {
		actions = append(actions, actionAdd)
	}
	actions = append(actions, actionEdit, actionBack)

	choice, err := s.driver.Select(ctx, SelectConfig{
		Message: Describe(info),
		Options: actions,
	})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(actions) {
		return nil
	}

	switch actions[choice] {
	case actionExpand, actionCollapse:
		applied, err := host.Toggle(id, !info.Expanded)
		if err != nil {
			return err
		}
		if !applied {
			return s.driver.Info(ctx, id+" has validation errors and stays open")
		}
	case actionAdd:
		return host.Add(id)
	case actionEdit:
		return s.edit(ctx, host, id)
	}
	return nil
}

// edit runs one raw JSON session. Parse errors are shown and the user may
// retry with the rejected text or give up, which discards the draft.
func (s *Session) edit(ctx context.Context, host Host, id string) error {
	if err := host.OpenEditor(id); err != nil {
		return err
	}
	for {
		info, err := host.Info(id)
		if err != nil {
			return err
		}
		text, err := s.driver.TextArea(ctx, TextAreaConfig{
			Message: "JSON for " + id,
			Default: info.Draft,
			Editor:  s.externalEditor,
		})
		if err != nil {
			_ = host.CancelEdit(id)
			return err
		}
		if err := host.SetDraft(id, text); err != nil {
			return err
		}
		confirmErr := host.ConfirmEdit(id)
		if confirmErr == nil {
			return nil
		}
		if err := s.driver.Info(ctx, confirmErr.Error()); err != nil {
			return err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Keep editing?", Default: true})
		if err != nil {
			return err
		}
		if !retry {
			return host.CancelEdit(id)
		}
	}
}

// Describe renders a one-line picker label for a panel.
func Describe(info form.PanelInfo) string {
	marker := "▸"
	if info.Expanded {
		marker = "▾"
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", info.Depth))
	b.WriteString(marker)
	b.WriteString(" ")
	if info.Title != "" {
		b.WriteString(info.Title)
	} else {
		b.WriteString(info.ID)
	}
	fmt.Fprintf(&b, " (%s %s)", info.Kind, info.Path)
	if info.Forced {
		b.WriteString(" !")
	}
	return b.String()
}
