package transition

import (
	"net/url"
	"time"

	tea "charm.land/bubbletea/v2"

	"segue/pkg/prefs"
	"segue/pkg/scene"
	"segue/pkg/tui/animation"
	"segue/pkg/tui/messages"
)

// pageNavigateMsg fires the actual navigation shortly before the exit fade
// finishes.
type pageNavigateMsg struct {
	gen    int
	target string
}

// pageRevealMsg is the time-boxed fallback that reveals a staged entrance
// when animation frames never arrive.
type pageRevealMsg struct {
	gen int
}

// pageCleanupMsg finalizes the entrance after the fade plus slack elapsed.
type pageCleanupMsg struct {
	gen int
}

// ActivationDetails describes how a link node was activated. The engine
// leaves native behavior alone for anything but a plain primary activation.
type ActivationDetails struct {
	DefaultPrevented bool
	SecondaryButton  bool
	Modified         bool
}

// Page is the page transition engine. It intercepts qualifying link
// activations, fades the body out, persists the pending flag across the
// navigation boundary and plays the matching entrance on the next page.
type Page struct {
	doc   *scene.Document
	store *prefs.Store

	// pageURL is the location of the current page, used to tell in-page
	// hash targets and cross-origin targets apart from real navigations.
	pageURL string

	reducedMotion func() bool

	// installed is false when reduced motion was active at construction;
	// the engine then never intercepts and never writes the pending flag.
	installed bool

	navigating     bool
	entrancePlayed bool

	h         handle
	frameWait int
}

// NewPage builds the page engine. With reduced motion active at
// construction the engine stays uninstalled: activations fall through to
// native navigation and no transition events are ever emitted.
func NewPage(doc *scene.Document, store *prefs.Store, pageURL string, reducedMotion func() bool) *Page {
	installed := reducedMotion == nil || !reducedMotion()
	return &Page{
		doc:           doc,
		store:         store,
		pageURL:       pageURL,
		reducedMotion: reducedMotion,
		installed:     installed,
	}
}

// Installed reports whether the engine intercepts navigation at all.
func (p *Page) Installed() bool {
	return p.installed
}

// Navigating reports whether an exit sequence is in flight.
func (p *Page) Navigating() bool {
	return p.navigating
}

// Show runs the entrance logic for a page that just loaded or was restored
// from the navigation cache. The pending flag is read and cleared in the
// same step; the entrance plays when the flag was set or when this page
// instance has never played one, otherwise the body is revealed as is.
func (p *Page) Show() tea.Cmd {
	if !p.installed {
		p.store.ClearPending()
		p.settle()
		return nil
	}
	p.navigating = false
	pending := p.store.ConsumePending()
	if !pending && p.entrancePlayed {
		p.settle()
		return nil
	}
	return p.playEntrance()
}

// Activate handles a link activation. The second return value reports
// whether the engine intercepted it; when false the caller performs the
// native navigation itself.
func (p *Page) Activate(node *scene.Node, details ActivationDetails) (tea.Cmd, bool) {
	if !p.installed || p.shouldSkip(node, details) {
		return nil, false
	}
	if p.navigating {
		// Single exit in flight; a second activation is swallowed.
		return nil, true
	}
	return p.playExit(node.Href), true
}

// Update handles page transition messages. Unrelated messages return nil.
func (p *Page) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messages.PageRestoredMsg:
		return p.Show()

	case messages.ReducedMotionChangedMsg:
		if !msg.Enabled || !p.installed {
			return nil
		}
		p.teardown()
		return nil

	case pageNavigateMsg:
		if !p.h.owns(msg.gen) {
			return nil
		}
		return tea.Batch(
			messages.Cmd(messages.TransitionExitCompleteMsg{Target: msg.target}),
			messages.Cmd(messages.NavigateMsg{Target: msg.target}),
		)

	case pageRevealMsg:
		if !p.h.owns(msg.gen) || p.frameWait == 0 {
			return nil
		}
		p.reveal()
		return nil

	case pageCleanupMsg:
		if !p.h.owns(msg.gen) {
			return nil
		}
		p.finalize()
		return messages.Cmd(messages.TransitionEnterCompleteMsg{})

	case animation.TickMsg:
		if p.frameWait == 0 {
			return nil
		}
		p.frameWait--
		if p.frameWait == 0 {
			p.reveal()
		}
		return nil
	}
	return nil
}

// shouldSkip implements the interception guard table: anything that is not
// a plain primary activation of a same-origin, different-document link
// keeps native behavior.
func (p *Page) shouldSkip(node *scene.Node, d ActivationDetails) bool {
	if node == nil || node.Href == "" {
		return true
	}
	if d.DefaultPrevented || d.SecondaryButton || d.Modified {
		return true
	}
	if node.Download || node.InstantTransition {
		return true
	}
	if node.Target != "" && node.Target != "_self" {
		return true
	}
	cur, err := url.Parse(p.pageURL)
	if err != nil {
		return true
	}
	dest, err := cur.Parse(node.Href)
	if err != nil {
		return true
	}
	if dest.Host != cur.Host || dest.Scheme != cur.Scheme {
		return true
	}
	if dest.Fragment != "" && normalizePath(dest.Path) == normalizePath(cur.Path) {
		return true
	}
	return false
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// playExit starts the exit sequence: persist the pending flag in every
// channel, fade the body out and schedule the navigation slightly before
// the fade ends.
func (p *Page) playExit(target string) tea.Cmd {
	p.navigating = true
	gen := p.h.next()
	p.frameWait = 0
	p.untagTargets()

	p.store.SetPending()
	p.doc.Body.Visible = false
	p.doc.Body.Faded = true

	return tea.Batch(
		messages.Cmd(messages.TransitionExitStartMsg{}),
		tea.Tick(PageFadeDuration-exitNavigateLead, func(time.Time) tea.Msg {
			return pageNavigateMsg{gen: gen, target: target}
		}),
	)
}

// playEntrance stages the body hidden, tags the content targets with their
// stagger order and reveals after two animation frames (or the time-boxed
// fallback), finalizing once the fade plus slack ran out.
func (p *Page) playEntrance() tea.Cmd {
	p.entrancePlayed = true
	gen := p.h.next()

	p.doc.Body.Visible = false
	p.doc.Body.Faded = true
	for i, n := range scene.CollectTargets(p.doc) {
		n.Order = i
		n.Animating = true
	}
	p.frameWait = 2

	return tea.Batch(
		messages.Cmd(messages.TransitionEnterStartMsg{}),
		p.h.sub.Start(),
		tea.Tick(frameFallbackDelay, func(time.Time) tea.Msg {
			return pageRevealMsg{gen: gen}
		}),
		tea.Tick(PageFadeDuration+enterCleanupSlack, func(time.Time) tea.Msg {
			return pageCleanupMsg{gen: gen}
		}),
	)
}

// reveal makes the staged body visible so the entrance fade plays.
func (p *Page) reveal() {
	p.frameWait = 0
	p.doc.Body.Visible = true
	p.h.sub.Stop()
}

// finalize settles the entrance: targets untagged, body fully visible.
func (p *Page) finalize() {
	p.untagTargets()
	p.doc.Body.Faded = false
	p.doc.Body.Visible = true
	p.h.sub.Stop()
}

// settle snaps the body to its fully visible resting state.
func (p *Page) settle() {
	p.h.dispose()
	p.frameWait = 0
	p.untagTargets()
	p.doc.Body.Faded = false
	p.doc.Body.Visible = true
}

// teardown uninstalls the engine mid-session: pending flags are cleared
// and visuals settle immediately.
func (p *Page) teardown() {
	p.installed = false
	p.navigating = false
	p.store.ClearPending()
	p.settle()
}

func (p *Page) untagTargets() {
	var walk func(nodes []*scene.Node)
	walk = func(nodes []*scene.Node) {
		for _, n := range nodes {
			n.Order = 0
			n.Animating = false
			walk(n.Children)
		}
	}
	if p.doc.Body != nil {
		walk(p.doc.Body.Children)
	}
}
