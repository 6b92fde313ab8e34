package collapse

import "sync"

// PanelID identifies one collapsible panel within a rendered form tree. The
// host engine supplies it; it stays stable for the panel's lifetime.
type PanelID = string

// Token signals "expand me again" when its value changes between render
// passes. Only inequality matters, never magnitude.
type Token uint64

// TokenSource hands out distinct tokens. The zero value is ready to use.
type TokenSource struct {
	mu   sync.Mutex
	last Token
}

// Next returns a token that differs from every previous one.
func (s *TokenSource) Next() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Current returns the most recently issued token.
func (s *TokenSource) Current() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Option configures a Controller.
type Option func(*Controller)

// WithCoordinator attaches an external collapse coordinator. Without one the
// controller is fully self-contained.
func WithCoordinator(coordinator Coordinator) Option {
	return func(c *Controller) {
		c.coordinator = coordinator
	}
}

// Controller reconciles a panel's expanded state against user toggles,
// forced expansion while validation errors exist, and re-expansion tokens.
type Controller struct {
	mu          sync.Mutex
	id          PanelID
	expanded    bool
	forceExpand bool
	token       Token
	coordinator Coordinator
}

// New mounts a controller for id. Panels start expanded unless the
// coordinator already lists the id as collapsed.
func New(id PanelID, options ...Option) *Controller {
	c := &Controller{id: id, expanded: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.coordinator != nil && c.coordinator.Collapsed(id) {
		c.expanded = false
	}
	return c
}

// ID returns the panel id the controller was mounted with.
func (c *Controller) ID() PanelID {
	return c.id
}

// Sync applies the inputs of a render pass. A token different from the last
// observed one expands the panel regardless of its current state.
func (c *Controller) Sync(forceExpand bool, token Token) {
	c.mu.Lock()
	c.forceExpand = forceExpand
	if token == c.token {
		c.mu.Unlock()
		return
	}
	c.token = token
	flipped := !c.expanded
	c.expanded = true
	coordinator := c.coordinator
	c.mu.Unlock()

	if flipped && coordinator != nil {
		coordinator.ReportChange(c.id, false)
	}
}

// Toggle records a user request to expand or collapse. Requests are ignored
// while the panel is forced open; the return value reports whether the
// request was applied.
func (c *Controller) Toggle(expanded bool) bool {
	c.mu.Lock()
	if c.forceExpand {
		c.mu.Unlock()
		return false
	}
	c.expanded = expanded
	coordinator := c.coordinator
	c.mu.Unlock()

	if coordinator != nil {
		coordinator.ReportChange(c.id, !expanded)
	}
	return true
}

// Expanded returns the state the rendering layer must present.
func (c *Controller) Expanded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forceExpand || c.expanded
}

// Forced reports whether the last render pass forced the panel open.
func (c *Controller) Forced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forceExpand
}
