package form

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formgen-collapsible/pkg/panels"
)

// PanelInfo is a snapshot of one mounted panel.
type PanelInfo struct {
	ID          string
	Kind        panels.Kind
	Path        string
	Depth       int
	Title       string
	Expanded    bool
	Forced      bool
	CanAdd      bool
	EditorOpen  bool
	Draft       string
	EditorError string
}

// Panels lists mounted panels in document order.
func (f *Form) Panels() ([]PanelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.refresh(context.Background()); err != nil {
		return nil, err
	}
	out := make([]PanelInfo, 0, len(f.outline))
	for _, id := range f.outline {
		if mounted, ok := f.mounted[id]; ok {
			out = append(out, mounted.info())
		}
	}
	return out, nil
}

// Info returns the snapshot of one panel.
func (f *Form) Info(id string) (PanelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return PanelInfo{}, err
	}
	return mounted.info(), nil
}

// Toggle applies a user expand/collapse request. The boolean is false when
// the panel is held open by errors and the request was ignored.
func (f *Form) Toggle(id string, expanded bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return false, err
	}
	applied := mounted.panel.Toggle(expanded)
	if !applied {
		f.logger.Debug("form: toggle ignored on forced panel " + id)
	}
	f.dirty = true
	return applied, nil
}

// Add appends an array item or a new object property below panel id.
func (f *Form) Add(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return err
	}
	if err := mounted.panel.Add(); err != nil {
		f.logger.Warn(err.Error())
		return err
	}
	f.dirty = true
	f.logger.Info("form: added element to " + id)
	return nil
}

// OpenEditor opens the raw JSON modal of panel id.
func (f *Form) OpenEditor(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return err
	}
	if err := mounted.panel.OpenEditor(); err != nil {
		return err
	}
	f.dirty = true
	return nil
}

// SetDraft replaces the editor text of panel id.
func (f *Form) SetDraft(id, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return err
	}
	mounted.panel.SetDraft(text)
	f.dirty = true
	return nil
}

// ConfirmEdit commits the editor draft of panel id. A parse error is
// returned and the modal stays open.
func (f *Form) ConfirmEdit(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return err
	}
	if err := mounted.panel.ConfirmEdit(); err != nil {
		f.dirty = true
		f.logger.Warn(fmt.Sprintf("form: edit of %s rejected: %v", id, err))
		return err
	}
	f.dirty = true
	f.logger.Info("form: applied raw edit to " + id)
	return nil
}

// CancelEdit closes the editor of panel id without applying the draft.
func (f *Form) CancelEdit(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mounted, err := f.lookup(id)
	if err != nil {
		return err
	}
	mounted.panel.CancelEdit()
	f.dirty = true
	return nil
}

// lookup refreshes pending changes and finds a mounted panel. Callers hold
// f.mu.
func (f *Form) lookup(id string) (*mountedPanel, error) {
	if err := f.refresh(context.Background()); err != nil {
		return nil, err
	}
	mounted, ok := f.mounted[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	return mounted, nil
}

func (m *mountedPanel) info() PanelInfo {
	info := PanelInfo{
		ID:         m.panel.ID(),
		Kind:       m.panel.Kind(),
		Path:       joinPath(m.path),
		Depth:      m.depth,
		Title:      m.title,
		Expanded:   m.panel.Expanded(),
		Forced:     m.panel.Forced(),
		CanAdd:     m.panel.CanAdd(),
		EditorOpen: m.panel.EditorOpen(),
	}
	if draft, ok := m.panel.Draft(); ok {
		info.Draft = draft
	}
	if err := m.panel.EditorError(); err != nil {
		info.EditorError = err.Error()
	}
	return info
}
