package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  Preference
	}{
		{"light", Light},
		{"dark", Dark},
		{"system", System},
		{"", System},
		{"blue", System},
		{"DARK", System},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.value), "Normalize(%q)", tt.value)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	darkTerminal := func() bool { return true }
	lightTerminal := func() bool { return false }

	assert.Equal(t, EffectiveLight, Resolve(Light, darkTerminal))
	assert.Equal(t, EffectiveDark, Resolve(Dark, lightTerminal))
	assert.Equal(t, EffectiveDark, Resolve(System, darkTerminal))
	assert.Equal(t, EffectiveLight, Resolve(System, lightTerminal))
	assert.Equal(t, EffectiveLight, Resolve(System, nil))
}

func TestResolve_ReflectsLiveSignal(t *testing.T) {
	t.Parallel()

	dark := false
	signal := func() bool { return dark }

	assert.Equal(t, EffectiveLight, Resolve(System, signal))
	dark = true
	assert.Equal(t, EffectiveDark, Resolve(System, signal))
}

func TestLoadPalette(t *testing.T) {
	t.Parallel()

	light := LoadPalette(EffectiveLight)
	require.NotNil(t, light)
	assert.Equal(t, "Light", light.Name)
	assert.NotEmpty(t, light.Colors.Background)
	assert.NotEmpty(t, light.Colors.TextPrimary)

	dark := LoadPalette(EffectiveDark)
	require.NotNil(t, dark)
	assert.Equal(t, "Dark", dark.Name)
	assert.NotEqual(t, light.Colors.Background, dark.Colors.Background)
}

func TestLoadPalette_LightInheritsDefaults(t *testing.T) {
	t.Parallel()

	// light.yaml only overrides the name; every color comes from default.yaml.
	light := LoadPalette(EffectiveLight)
	assert.Equal(t, "#F8FAFC", light.Colors.Background)
	assert.Equal(t, "#2563EB", light.Colors.Accent)
}

func TestLoadPalette_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := LoadPalette(EffectiveDark)
	a.Colors.Background = "#000000"

	b := LoadPalette(EffectiveDark)
	assert.NotEqual(t, "#000000", b.Colors.Background)
}
