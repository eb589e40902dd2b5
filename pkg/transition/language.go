package transition

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"segue/pkg/scene"
	"segue/pkg/tui/messages"
)

// langMidpointMsg fires when the outgoing fade finished and the content is
// fully hidden; the locale swap happens here.
type langMidpointMsg struct {
	gen int
}

// langStageInMsg starts the incoming fade one loop pass after the swapped
// content was staged, so the hidden state renders before it animates.
type langStageInMsg struct {
	gen int
}

// langCleanupMsg clears the staging attributes after the incoming fade.
type langCleanupMsg struct {
	gen int
}

// Language coordinates a locale swap behind a fade: the body fades out,
// the update function swaps the content at the midpoint, the body fades
// back in. Re-entrant calls while a fade is in flight queue at most one
// pending locale; the latest call wins.
type Language struct {
	body *scene.Body

	// update swaps the content and returns the locale it actually applied.
	// An empty return records the requested locale instead.
	update func(locale string) string

	duration      time.Duration
	reducedMotion func() bool

	// last is the last applied locale; empty means none recorded yet.
	last string

	animating  bool
	target     string
	swapped    bool
	pending    string
	hasPending bool

	h handle
}

// NewLanguage builds a locale fade helper over the given body. A
// non-positive duration falls back to the default fade length.
func NewLanguage(body *scene.Body, update func(locale string) string, duration time.Duration, reducedMotion func() bool) *Language {
	if duration <= 0 {
		duration = DefaultLanguageFade
	}
	return &Language{
		body:          body,
		update:        update,
		duration:      duration,
		reducedMotion: reducedMotion,
	}
}

// Last returns the last applied locale, empty when none was recorded.
func (l *Language) Last() string {
	return l.last
}

// Apply swaps to the given locale. The swap is synchronous when animate is
// false, reduced motion is active, no prior locale was recorded, or the
// locale is already applied. While a fade is in flight the request is
// queued instead, replacing any previously queued one.
func (l *Language) Apply(locale string, animate bool) tea.Cmd {
	if l.animating {
		l.pending = locale
		l.hasPending = true
		return nil
	}
	if !animate || l.reduced() || l.last == "" || locale == l.last {
		l.commit(locale)
		return nil
	}

	l.animating = true
	l.target = locale
	l.swapped = false
	gen := l.h.next()

	l.body.LangDuration = l.duration
	l.body.LangPhase = "out"

	return tea.Tick(l.duration, func(time.Time) tea.Msg {
		return langMidpointMsg{gen: gen}
	})
}

// Update handles language fade messages. Unrelated messages return nil.
func (l *Language) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messages.LocaleSelectedMsg:
		return l.Apply(msg.Locale, true)

	case messages.ReducedMotionChangedMsg:
		if msg.Enabled {
			l.cancel()
		}
		return nil

	case langMidpointMsg:
		if !l.h.owns(msg.gen) {
			return nil
		}
		l.commit(l.target)
		l.swapped = true
		l.body.LangPhase = "ready"
		return messages.Cmd(langStageInMsg{gen: msg.gen})

	case langStageInMsg:
		if !l.h.owns(msg.gen) {
			return nil
		}
		l.body.LangPhase = "in"
		gen := msg.gen
		return tea.Tick(l.duration, func(time.Time) tea.Msg {
			return langCleanupMsg{gen: gen}
		})

	case langCleanupMsg:
		if !l.h.owns(msg.gen) {
			return nil
		}
		l.body.LangPhase = ""
		l.body.LangDuration = 0
		l.animating = false
		if l.hasPending {
			pending := l.pending
			l.hasPending = false
			l.pending = ""
			return l.Apply(pending, true)
		}
		return nil
	}
	return nil
}

// cancel forces an in-flight fade to its terminal, fully applied state.
func (l *Language) cancel() {
	l.h.dispose()
	if l.animating {
		if !l.swapped {
			l.commit(l.target)
		}
		if l.hasPending {
			l.commit(l.pending)
		}
	}
	l.animating = false
	l.hasPending = false
	l.pending = ""
	l.body.LangPhase = ""
	l.body.LangDuration = 0
}

// commit swaps the content synchronously and records the applied locale.
func (l *Language) commit(locale string) {
	applied := l.update(locale)
	if applied == "" {
		applied = locale
	}
	l.last = applied
}

func (l *Language) reduced() bool {
	return l.reducedMotion != nil && l.reducedMotion()
}
