// Package animation provides the shared animation frame stream for the UI.
// Every animated concern (theme crossfade, page entrance stagger, language
// fades) consumes one tick stream so frames stay synchronized and an idle
// page schedules no timers at all.
//
// Thread safety: all exported functions are safe for concurrent use, though
// the typical usage pattern is single-threaded via the Update loop.
package animation

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is broadcast to all animated components on each animation frame.
type TickMsg struct {
	Frame int
}

// FrameInterval is the spacing of animation frames. 30 FPS keeps the
// sub-second crossfades smooth without burning CPU on an idle page.
const FrameInterval = time.Second / 30

// Coordinator manages a single tick stream for all animations. Ticks are
// generated only while at least one animation is registered.
type Coordinator struct {
	// mu guards all fields. The Update loop is single-threaded, but the
	// mutex keeps StartTickIfFirst atomic against Cmd goroutines.
	mu     sync.Mutex
	frame  int
	active int
}

var defaultCoordinator = &Coordinator{}

// Register increments the active animation count.
func Register() {
	defaultCoordinator.mu.Lock()
	defaultCoordinator.active++
	defaultCoordinator.mu.Unlock()
}

// Unregister decrements the active animation count.
func Unregister() {
	defaultCoordinator.mu.Lock()
	if defaultCoordinator.active > 0 {
		defaultCoordinator.active--
	}
	defaultCoordinator.mu.Unlock()
}

// HasActive returns true if any animations are currently registered.
func HasActive() bool {
	defaultCoordinator.mu.Lock()
	active := defaultCoordinator.active > 0
	defaultCoordinator.mu.Unlock()
	return active
}

// StartTick continues the tick stream if any animations remain active.
// Call after processing a TickMsg.
func StartTick() tea.Cmd {
	defaultCoordinator.mu.Lock()
	defer defaultCoordinator.mu.Unlock()
	if defaultCoordinator.active <= 0 {
		return nil
	}
	return defaultCoordinator.tickLocked()
}

// StartTickIfFirst registers an animation and starts the tick stream when
// this is the first one. Atomic: no race between check and register.
func StartTickIfFirst() tea.Cmd {
	defaultCoordinator.mu.Lock()
	defer defaultCoordinator.mu.Unlock()
	wasEmpty := defaultCoordinator.active == 0
	defaultCoordinator.active++
	if wasEmpty {
		return defaultCoordinator.tickLocked()
	}
	return nil
}

// tickLocked returns a tick command. Must be called with mu held.
func (c *Coordinator) tickLocked() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		c.mu.Lock()
		c.frame++
		frame := c.frame
		c.mu.Unlock()
		return TickMsg{Frame: frame}
	})
}
