package editor

import (
	"errors"
	"strings"
	"sync"
)

// ErrSessionClosed is returned when confirming a session that is not open.
var ErrSessionClosed = errors.New("editor: session is not open")

// Session holds the transient state of the "edit as JSON" modal.
type Session struct {
	mu       sync.Mutex
	open     bool
	draft    *string
	fallback any
	lastErr  error
}

// Open starts a session whose draft is the pretty-printed value. A nil value
// is replaced by fallback ([] for arrays, {} for objects).
func (s *Session) Open(value, fallback any) error {
	if value == nil {
		value = fallback
	}
	text, err := Pretty(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.draft = &text
	s.fallback = fallback
	s.lastErr = nil
	return nil
}

// SetDraft replaces the draft text. It is ignored when the session is closed.
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.draft = &text
}

// Confirm parses the draft. On success apply receives the parsed value
// exactly once and the session closes. On a parse error the session stays
// open with the draft untouched and apply is not called.
func (s *Session) Confirm(apply func(any)) (any, error) {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}

	var (
		value any
		err   error
	)
	if s.draft == nil || strings.TrimSpace(*s.draft) == "" {
		value = s.fallback
	} else {
		value, err = Parse(*s.draft)
	}
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		return nil, err
	}
	s.reset()
	s.mu.Unlock()

	if apply != nil {
		apply(value)
	}
	return value, nil
}

// Cancel closes the session and discards the draft.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// IsOpen reports whether the modal is showing.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Draft returns the current draft text and whether one exists.
func (s *Session) Draft() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return "", false
	}
	return *s.draft, true
}

// Err returns the parse error from the last failed confirm, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) reset() {
	s.open = false
	s.draft = nil
	s.fallback = nil
	s.lastErr = nil
}
