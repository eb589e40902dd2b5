package animation

import tea "charm.land/bubbletea/v2"

// Subscription tracks one component's participation in the shared tick
// stream, so repeated Start/Stop calls never unbalance the coordinator's
// active count.
type Subscription struct {
	active bool
}

// Start activates the subscription if not already active. Returns the
// command that kicks off the tick stream when this is the first animation.
func (s *Subscription) Start() tea.Cmd {
	if s.active {
		return nil
	}
	s.active = true
	return StartTickIfFirst()
}

// Stop deactivates the subscription if currently active.
func (s *Subscription) Stop() {
	if !s.active {
		return
	}
	s.active = false
	Unregister()
}

// IsActive returns whether the subscription is currently active.
func (s *Subscription) IsActive() bool {
	return s.active
}
