// Package messages defines the typed message vocabulary shared between the
// transition engines, the UI components and the application shell.
package messages

import (
	tea "charm.land/bubbletea/v2"

	"segue/pkg/scene"
)

// Cmd wraps a message in a command that delivers it on the next loop pass.
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Page transition lifecycle. Direction is reserved for collaborators and
// stays empty in the core engines.
type (
	// TransitionExitStartMsg is emitted when an exit animation begins.
	TransitionExitStartMsg struct {
		Direction string
	}

	// TransitionExitCompleteMsg is emitted right before navigation.
	TransitionExitCompleteMsg struct {
		Direction string
		Target    string
	}

	// TransitionEnterStartMsg is emitted when an entrance animation begins.
	TransitionEnterStartMsg struct {
		Direction string
	}

	// TransitionEnterCompleteMsg is emitted once the entrance settles.
	TransitionEnterCompleteMsg struct {
		Direction string
	}
)

// NavigateMsg asks the application shell to perform the actual navigation:
// tear down the current page model and build a fresh one for the target.
type NavigateMsg struct {
	Target string
}

// PageRestoredMsg reports that an existing page model became visible again
// without being rebuilt (the back/forward-cache analog). Persisted is false
// for the initial show.
type PageRestoredMsg struct {
	Persisted bool
}

// Theme messages.
type (
	// ThemeSelectedMsg carries a new preference chosen in a select control.
	ThemeSelectedMsg struct {
		Preference string
	}

	// ThemeChangedMsg notifies components that theme attributes were
	// committed (for style cache invalidation).
	ThemeChangedMsg struct{}

	// SystemThemeChangedMsg reports that the terminal background flipped
	// between light and dark.
	SystemThemeChangedMsg struct {
		Dark bool
	}

	// PreferenceStoreChangedMsg reports that another process rewrote the
	// durable preference store.
	PreferenceStoreChangedMsg struct {
		Value string
	}
)

// ReducedMotionChangedMsg reports a mid-session change of the
// reduced-motion setting.
type ReducedMotionChangedMsg struct {
	Enabled bool
}

// LocaleSelectedMsg carries a locale switch request.
type LocaleSelectedMsg struct {
	Locale string
}

// FooterLoadedMsg reports that the footer partial finished loading (or
// failed and was replaced by the inline fallback). Roots are the injected
// nodes; consumers re-run focus normalization on them.
type FooterLoadedMsg struct {
	Roots []*scene.Node
}
