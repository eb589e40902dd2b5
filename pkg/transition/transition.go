// Package transition implements the page's transition engines: the theme
// crossfade, the exit/enter page transition that survives a full page
// teardown, and the language fade helper.
//
// The engines are plain injectable objects constructed once per page
// context. They own their scene state exclusively (the theme engine writes
// Root and Overlay, the page engine writes the body fade state) and they
// communicate with the rest of the UI through messages.
package transition

import "time"

const (
	// ThemeFadeDuration is the theme crossfade length.
	ThemeFadeDuration = 750 * time.Millisecond

	// PageFadeDuration is the page exit/enter fade length.
	PageFadeDuration = 600 * time.Millisecond

	// exitNavigateLead fires the navigation slightly before the exit fade
	// finishes so the next page starts loading under the last frames.
	exitNavigateLead = 40 * time.Millisecond

	// enterCleanupSlack pads the entrance teardown past the fade so the
	// staggered targets finish before they are untagged.
	enterCleanupSlack = 120 * time.Millisecond

	// frameFallbackDelay reveals a staged entrance even when animation
	// frames never arrive (suspended or throttled UI loop).
	frameFallbackDelay = 48 * time.Millisecond

	// DefaultLanguageFade is the default locale-swap fade length.
	DefaultLanguageFade = 320 * time.Millisecond
)

// Select is a theme select control whose displayed value the theme engine
// keeps in sync with the stored preference.
type Select interface {
	SetValue(value string)
}
