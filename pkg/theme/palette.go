package theme

import (
	"embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed themes/*.yaml
var builtinPalettes embed.FS

// Palette is the set of colors one effective theme renders with.
// All fields are optional in the YAML; unset fields use the defaults.
type Palette struct {
	Name   string        `yaml:"name,omitempty"`
	Colors PaletteColors `yaml:"colors,omitempty"`
}

// PaletteColors contains the color definitions used by the UI.
// Values are hex color strings (e.g. "#0F172A").
type PaletteColors struct {
	Background    string `yaml:"background,omitempty"`
	BackgroundAlt string `yaml:"background_alt,omitempty"`

	TextPrimary   string `yaml:"text_primary,omitempty"`
	TextSecondary string `yaml:"text_secondary,omitempty"`
	TextMuted     string `yaml:"text_muted,omitempty"`

	Accent string `yaml:"accent,omitempty"`
	Link   string `yaml:"link,omitempty"`
	Border string `yaml:"border,omitempty"`

	Success string `yaml:"success,omitempty"`
	Error   string `yaml:"error,omitempty"`
	Warning string `yaml:"warning,omitempty"`
}

var (
	paletteCache   = make(map[Effective]*Palette)
	paletteCacheMu sync.Mutex
)

// LoadPalette returns the built-in palette for the effective theme.
// Palettes are embedded at compile time, so a load failure is a bug.
func LoadPalette(effective Effective) *Palette {
	paletteCacheMu.Lock()
	defer paletteCacheMu.Unlock()

	if p, ok := paletteCache[effective]; ok {
		copied := *p
		return &copied
	}

	base := defaultPalette()

	data, err := builtinPalettes.ReadFile(fmt.Sprintf("themes/%s.yaml", effective))
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded palette %q: %v", effective, err))
	}
	var override Palette
	if err := yaml.Unmarshal(data, &override); err != nil {
		panic(fmt.Sprintf("failed to parse embedded palette %q: %v", effective, err))
	}

	merged := mergePalette(base, &override)
	if merged.Name == "" {
		merged.Name = string(effective)
	}

	paletteCache[effective] = merged
	copied := *merged
	return &copied
}

func defaultPalette() *Palette {
	data, err := builtinPalettes.ReadFile("themes/default.yaml")
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded default.yaml: %v", err))
	}
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default.yaml: %v", err))
	}
	return &p
}

// mergePalette merges override onto base, returning a new palette.
// Only non-empty fields in override replace base values.
func mergePalette(base, override *Palette) *Palette {
	result := *base
	if override.Name != "" {
		result.Name = override.Name
	}
	result.Colors = mergeColors(base.Colors, override.Colors)
	return &result
}

func mergeColors(base, override PaletteColors) PaletteColors {
	result := base
	if override.Background != "" {
		result.Background = override.Background
	}
	if override.BackgroundAlt != "" {
		result.BackgroundAlt = override.BackgroundAlt
	}
	if override.TextPrimary != "" {
		result.TextPrimary = override.TextPrimary
	}
	if override.TextSecondary != "" {
		result.TextSecondary = override.TextSecondary
	}
	if override.TextMuted != "" {
		result.TextMuted = override.TextMuted
	}
	if override.Accent != "" {
		result.Accent = override.Accent
	}
	if override.Link != "" {
		result.Link = override.Link
	}
	if override.Border != "" {
		result.Border = override.Border
	}
	if override.Success != "" {
		result.Success = override.Success
	}
	if override.Error != "" {
		result.Error = override.Error
	}
	if override.Warning != "" {
		result.Warning = override.Warning
	}
	return result
}
