// Package theme defines the user-facing theme preference and resolves it
// to the light or dark palette that actually renders.
package theme

// Preference is the user-chosen theme mode.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Normalize maps any stored or user-supplied value onto a valid preference.
// Unknown values fall back to System.
func Normalize(value string) Preference {
	switch Preference(value) {
	case Light, Dark, System:
		return Preference(value)
	default:
		return System
	}
}

// Effective is the theme that actually renders: always light or dark.
type Effective string

const (
	EffectiveLight Effective = "light"
	EffectiveDark  Effective = "dark"
)

// Resolve maps a preference to the effective theme. For System it consults
// the live terminal-background signal at call time; the result is never
// cached independently of its inputs.
func Resolve(pref Preference, systemDark func() bool) Effective {
	switch pref {
	case Light:
		return EffectiveLight
	case Dark:
		return EffectiveDark
	default:
		if systemDark != nil && systemDark() {
			return EffectiveDark
		}
		return EffectiveLight
	}
}
