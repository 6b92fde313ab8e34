package collapse

import (
	"slices"
	"sync"
)

// Coordinator lets collapse state be managed outside individual panels.
// Panels query their own initial state and report only their own changes.
type Coordinator interface {
	Collapsed(id PanelID) bool
	ReportChange(id PanelID, collapsed bool)
}

// ChangeFunc receives collapse notifications.
type ChangeFunc func(id PanelID, collapsed bool)

// CollapsedList is a Coordinator backed by a set of collapsed panel ids. It
// is safe for concurrent use.
type CollapsedList struct {
	mu        sync.RWMutex
	collapsed map[PanelID]struct{}
	onChange  ChangeFunc
}

// NewCollapsedList seeds the coordinator with ids that should mount
// collapsed. onChange may be nil.
func NewCollapsedList(ids []PanelID, onChange ChangeFunc) *CollapsedList {
	list := &CollapsedList{
		collapsed: make(map[PanelID]struct{}, len(ids)),
		onChange:  onChange,
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		list.collapsed[id] = struct{}{}
	}
	return list
}

// Collapsed implements Coordinator.
func (l *CollapsedList) Collapsed(id PanelID) bool {
	if l == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.collapsed[id]
	return ok
}

// ReportChange implements Coordinator.
func (l *CollapsedList) ReportChange(id PanelID, collapsed bool) {
	if l == nil || id == "" {
		return
	}
	l.mu.Lock()
	if collapsed {
		l.collapsed[id] = struct{}{}
	} else {
		delete(l.collapsed, id)
	}
	onChange := l.onChange
	l.mu.Unlock()

	if onChange != nil {
		onChange(id, collapsed)
	}
}

// Snapshot returns the collapsed ids in sorted order.
func (l *CollapsedList) Snapshot() []PanelID {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]PanelID, 0, len(l.collapsed))
	for id := range l.collapsed {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Notifier adapts a bare change sink into a Coordinator that never reports
// panels as collapsed on mount.
type Notifier ChangeFunc

// Collapsed implements Coordinator.
func (n Notifier) Collapsed(PanelID) bool { return false }

// ReportChange implements Coordinator.
func (n Notifier) ReportChange(id PanelID, collapsed bool) {
	if n != nil {
		n(id, collapsed)
	}
}
