// Package scene holds the mutable render state of a page: the root theme
// attributes, the body fade state, the singleton crossfade overlay and the
// node tree the terminal view is drawn from.
//
// Ownership is strict: the theme engine is the only writer of Root and
// Overlay, the page engine is the only writer of the body fade state.
package scene

import "time"

// Root carries the document-wide theme attributes. They are committed only
// by the theme transition engine.
type Root struct {
	// Theme is the effective theme: "light" or "dark".
	Theme string
	// ThemePreference is the user preference: "light", "dark" or "system".
	ThemePreference string
	// Transitioning is set while a theme crossfade is in flight.
	Transitioning bool
}

// Overlay is the singleton crossfade layer. While a theme transition runs
// it holds a snapshot of the previous background and fades out over the
// newly committed one. The zero value is the inert state.
type Overlay struct {
	// Active reports whether the overlay is part of the scene at all.
	Active bool
	// Color is the snapshotted background color (hex).
	Color string
	// Opacity runs from 1 (old background fully covers) down to 0.
	Opacity float64
	// Fading reports whether the opacity is animating linearly to zero.
	Fading bool
}

// Reset returns the overlay to its inert state.
func (o *Overlay) Reset() {
	*o = Overlay{}
}

// Body is the page body: fade state for page transitions, the staging
// attribute for language transitions, and the top-level content nodes.
type Body struct {
	// Faded hides the body (exit played or entrance staged).
	Faded bool
	// Visible reveals the body; cleared while staging an entrance.
	Visible bool

	// LangPhase is the language transition staging attribute:
	// "", "out", "ready" or "in".
	LangPhase string
	// LangDuration is the per-transition duration property; zero means unset.
	LangDuration time.Duration

	Children []*Node
}

// Node is one element of the page tree.
type Node struct {
	// Label is the rendered text (or markdown for content blocks).
	Label string
	// Href is the navigation target for link nodes.
	Href string
	// Target names a non-default navigation surface; anything other than
	// "" or "_self" keeps native behavior.
	Target string
	// Download marks links fetching a resource instead of navigating.
	Download bool
	// InstantTransition opts a link out of the exit/enter animation.
	InstantTransition bool

	// Pressable marks keyboard-activatable elements.
	Pressable bool
	// TransitionDirection marks elements carrying a direction hint for
	// collaborators; they are focus-normalized like pressables.
	TransitionDirection string
	// TransitionFade explicitly opts the node into entrance staggering.
	TransitionFade bool
	// TransitionIgnore opts a top-level node out of entrance staggering.
	TransitionIgnore bool
	// Decorative marks non-content nodes (separators, spacers) that are
	// never staggered.
	Decorative bool

	// TabIndex is nil while unset. The focus normalizer assigns zero to
	// pressable nodes whose index is unset or negative.
	TabIndex *int

	// Order is the entrance stagger index; meaningful only while Animating.
	Order int
	// Animating marks the node as a tagged entrance target.
	Animating bool

	Children []*Node
}

// Document is the full render state of one page.
type Document struct {
	Root    Root
	Body    *Body
	Overlay Overlay
}

// NewDocument returns a document with an empty body.
func NewDocument() *Document {
	return &Document{Body: &Body{}}
}

// CollectTargets returns the nodes eligible for staggered entrance
// animation: explicitly opted-in nodes first, then top-level body children
// that are neither decorative nor opted out, deduplicated in order.
func CollectTargets(doc *Document) []*Node {
	if doc == nil || doc.Body == nil {
		return nil
	}

	var explicit []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if n.TransitionFade {
				explicit = append(explicit, n)
			}
			walk(n.Children)
		}
	}
	walk(doc.Body.Children)

	var direct []*Node
	for _, n := range doc.Body.Children {
		if n.Decorative || n.TransitionIgnore {
			continue
		}
		direct = append(direct, n)
	}

	seen := make(map[*Node]bool)
	var merged []*Node
	for _, n := range append(explicit, direct...) {
		if !seen[n] {
			seen[n] = true
			merged = append(merged, n)
		}
	}
	return merged
}
