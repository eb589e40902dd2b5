package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusPressables(t *testing.T) {
	t.Parallel()

	neg := -1
	set := 2
	pressable := &Node{Pressable: true}
	negative := &Node{Pressable: true, TabIndex: &neg}
	preset := &Node{Pressable: true, TabIndex: &set}
	directional := &Node{TransitionDirection: "next"}
	plain := &Node{}

	root := &Node{Children: []*Node{pressable, negative, preset, directional, plain}}
	FocusPressables(root)

	require.NotNil(t, pressable.TabIndex)
	assert.Equal(t, 0, *pressable.TabIndex)
	require.NotNil(t, negative.TabIndex)
	assert.Equal(t, 0, *negative.TabIndex, "negative index is normalized to zero")
	assert.Equal(t, 2, *preset.TabIndex, "explicit positive index is preserved")
	require.NotNil(t, directional.TabIndex)
	assert.Equal(t, 0, *directional.TabIndex)
	assert.Nil(t, plain.TabIndex, "non-pressable nodes stay untouched")
}

func TestFocusPressables_Idempotent(t *testing.T) {
	t.Parallel()

	n := &Node{Pressable: true}
	root := &Node{Children: []*Node{n}}

	FocusPressables(root)
	first := n.TabIndex
	FocusPressables(root, root)
	assert.Same(t, first, n.TabIndex)
}

func TestFocusPressables_NilSafe(t *testing.T) {
	t.Parallel()
	FocusPressables(nil, &Node{})
}

func TestCollectTargets(t *testing.T) {
	t.Parallel()

	hero := &Node{Label: "hero"}
	decorative := &Node{Decorative: true}
	ignored := &Node{TransitionIgnore: true}
	nestedFade := &Node{TransitionFade: true}
	section := &Node{Label: "section", Children: []*Node{nestedFade}}

	doc := NewDocument()
	doc.Body.Children = []*Node{hero, decorative, ignored, section}

	targets := CollectTargets(doc)
	// Explicit opt-ins come first, then top-level children, deduplicated.
	require.Equal(t, []*Node{nestedFade, hero, section}, targets)
}

func TestCollectTargets_ExplicitTopLevelNotDuplicated(t *testing.T) {
	t.Parallel()

	both := &Node{TransitionFade: true}
	doc := NewDocument()
	doc.Body.Children = []*Node{both}

	assert.Equal(t, []*Node{both}, CollectTargets(doc))
}

func TestCollectTargets_NilDocument(t *testing.T) {
	t.Parallel()
	assert.Nil(t, CollectTargets(nil))
	assert.Nil(t, CollectTargets(&Document{}))
}

func TestOverlayReset(t *testing.T) {
	t.Parallel()

	o := Overlay{Active: true, Color: "#000000", Opacity: 0.4, Fading: true}
	o.Reset()
	assert.Equal(t, Overlay{}, o)
}
