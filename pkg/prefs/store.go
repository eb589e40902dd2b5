// Package prefs persists small pieces of UI state across page loads and
// processes: the theme preference and the page-transition pending flag.
//
// Persistence is strictly best-effort. Every backend swallows its own
// failures and reports them as a missing value or a false return; nothing
// in this package ever makes rendering fail.
package prefs

import (
	"path/filepath"

	"segue/pkg/paths"
)

// Keys stored by the rest of the application.
const (
	// ThemeKey holds the theme preference ("light", "dark" or "system").
	ThemeKey = "theme"

	// TransitionPendingKey marks that the next page load should play an
	// entrance animation. Written on exit, consumed exactly once on enter.
	TransitionPendingKey = "transition-pending"
)

// flagValue is the marker written for boolean-ish flags.
const flagValue = "1"

// Backend is a single key/value persistence channel. Implementations never
// return errors: a failed read is a missing value, a failed write returns
// false. Callers treat every backend as unreliable.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) bool
	Remove(key string) bool
}

// Chain is a ranked list of backends sharing one uniform read/write/remove
// surface. Get returns the first backend that has the key; Set and Remove
// fan out to every backend so the value survives whichever channels happen
// to work in this environment.
type Chain struct {
	backends []Backend
}

// NewChain builds a chain over the given backends, most durable first.
func NewChain(backends ...Backend) *Chain {
	return &Chain{backends: backends}
}

// Get returns the value from the first backend that has it.
func (c *Chain) Get(key string) (string, bool) {
	for _, b := range c.backends {
		if v, ok := b.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Set writes the value to every backend. Returns true if at least one
// backend accepted the write.
func (c *Chain) Set(key, value string) bool {
	any := false
	for _, b := range c.backends {
		if b.Set(key, value) {
			any = true
		}
	}
	return any
}

// Remove deletes the key from every backend. Returns true if at least one
// backend reported a successful removal.
func (c *Chain) Remove(key string) bool {
	any := false
	for _, b := range c.backends {
		if b.Remove(key) {
			any = true
		}
	}
	return any
}

// SetFlag marks the key in every backend.
func (c *Chain) SetFlag(key string) {
	c.Set(key, flagValue)
}

// ConsumeFlag reports whether any backend holds the flag and clears it from
// all of them. The flag is observed at most once: an immediate second call
// returns false.
func (c *Chain) ConsumeFlag(key string) bool {
	pending := false
	for _, b := range c.backends {
		if v, ok := b.Get(key); ok && v == flagValue {
			pending = true
			break
		}
	}
	if pending {
		c.Remove(key)
	}
	return pending
}

// Store bundles the durable preference backend with the full ranked chain
// used for cross-navigation flags.
type Store struct {
	durable Backend
	chain   *Chain
}

// DurablePath returns the location of the durable key/value state file.
func DurablePath() string {
	return filepath.Join(paths.GetConfigDir(), "state.yaml")
}

// Open builds a store over the default channels: a durable file in the
// config dir, a session-scoped file in the state dir, and the per-window
// environment channel.
func Open() *Store {
	durable := NewFile(DurablePath())
	session := NewFile(SessionPath())
	window := NewWindow(WindowStateEnv)
	return New(durable, session, window)
}

// New builds a store from explicit backends, most durable first. The first
// backend is used for the theme preference; the whole list backs flags.
func New(durable Backend, rest ...Backend) *Store {
	all := append([]Backend{durable}, rest...)
	return &Store{
		durable: durable,
		chain:   NewChain(all...),
	}
}

// ReadPreference returns the stored theme preference, if any.
func (s *Store) ReadPreference() (string, bool) {
	return s.durable.Get(ThemeKey)
}

// WritePreference persists the theme preference, best effort.
func (s *Store) WritePreference(value string) bool {
	return s.durable.Set(ThemeKey, value)
}

// SetPending marks the pending-transition flag in every channel.
func (s *Store) SetPending() {
	s.chain.SetFlag(TransitionPendingKey)
}

// ConsumePending reads and clears the pending-transition flag, at most once.
func (s *Store) ConsumePending() bool {
	return s.chain.ConsumeFlag(TransitionPendingKey)
}

// ClearPending removes the pending-transition flag without reading it.
func (s *Store) ClearPending() {
	s.chain.Remove(TransitionPendingKey)
}
