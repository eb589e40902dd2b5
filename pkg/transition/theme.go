package transition

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"segue/pkg/prefs"
	"segue/pkg/scene"
	"segue/pkg/theme"
	"segue/pkg/tui/animation"
	"segue/pkg/tui/messages"
)

// themeFadeStartMsg begins the overlay fade one loop pass after the overlay
// was staged at full opacity, so the snapshot renders before it animates.
type themeFadeStartMsg struct {
	gen int
}

// themeFadeDoneMsg tears the overlay down once the crossfade ran out.
type themeFadeDoneMsg struct {
	gen int
}

// Theme is the theme transition engine. It owns the document root theme
// attributes and the crossfade overlay: the new theme is committed at fade
// start and the overlay holds a snapshot of the old background that fades
// out over it.
type Theme struct {
	doc   *scene.Document
	store *prefs.Store

	// systemDark reports the live terminal-background signal. Consulted
	// on every resolve so a System preference never caches a stale value.
	systemDark func() bool

	// reducedMotion reports the live reduced-motion setting.
	reducedMotion func() bool

	active  theme.Preference
	selects []Select

	h         handle
	fadeStart time.Time

	now func() time.Time
}

// NewTheme builds the theme engine over the given document and store. The
// systemDark and reducedMotion probes may be nil; both then read as false.
func NewTheme(doc *scene.Document, store *prefs.Store, systemDark, reducedMotion func() bool) *Theme {
	return &Theme{
		doc:           doc,
		store:         store,
		systemDark:    systemDark,
		reducedMotion: reducedMotion,
		active:        theme.System,
		now:           time.Now,
	}
}

// Init restores the stored preference and commits it without animation.
func (e *Theme) Init() tea.Cmd {
	stored, _ := e.store.ReadPreference()
	return e.apply(theme.Normalize(stored), true)
}

// Attach registers a select control and syncs it to the active preference.
func (e *Theme) Attach(sel Select) {
	e.selects = append(e.selects, sel)
	sel.SetValue(string(e.active))
}

// Preference returns the active theme preference.
func (e *Theme) Preference() theme.Preference {
	return e.active
}

// Refresh re-applies the active preference without animation and
// re-normalizes focus affordances on the given subtrees.
func (e *Theme) Refresh(roots ...*scene.Node) tea.Cmd {
	scene.FocusPressables(roots...)
	return e.apply(e.active, true)
}

// Set persists a new preference and applies it with a crossfade, after
// re-normalizing focus affordances on the given subtrees. Applying the
// preference that already renders is a no-op apart from persistence.
func (e *Theme) Set(pref theme.Preference, roots ...*scene.Node) tea.Cmd {
	scene.FocusPressables(roots...)
	pref = theme.Normalize(string(pref))
	e.store.WritePreference(string(pref))
	if pref == e.active && string(e.resolve(pref)) == e.doc.Root.Theme {
		e.syncSelects(pref)
		return nil
	}
	return e.apply(pref, false)
}

// Update handles theme-related messages. Unrelated messages return nil.
func (e *Theme) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case messages.ThemeSelectedMsg:
		return e.Set(theme.Normalize(msg.Preference))

	case messages.SystemThemeChangedMsg:
		if e.active != theme.System {
			return nil
		}
		return e.apply(theme.System, false)

	case messages.PreferenceStoreChangedMsg:
		// Another process already persisted the value; apply without
		// writing it back. The watcher also reports this process's own
		// writes, so a value that already renders is ignored rather than
		// canceling an in-flight crossfade.
		pref := theme.Normalize(msg.Value)
		if pref == e.active && string(e.resolve(pref)) == e.doc.Root.Theme {
			return nil
		}
		return e.apply(pref, false)

	case messages.ReducedMotionChangedMsg:
		if msg.Enabled {
			e.cancel()
		}
		return nil

	case themeFadeStartMsg:
		if !e.h.owns(msg.gen) {
			return nil
		}
		e.doc.Overlay.Fading = true
		e.fadeStart = e.now()
		gen := msg.gen
		return tea.Batch(
			e.h.sub.Start(),
			tea.Tick(ThemeFadeDuration, func(time.Time) tea.Msg {
				return themeFadeDoneMsg{gen: gen}
			}),
		)

	case themeFadeDoneMsg:
		if !e.h.owns(msg.gen) {
			return nil
		}
		e.settle()
		return nil

	case animation.TickMsg:
		if !e.doc.Overlay.Fading {
			return nil
		}
		progress := float64(e.now().Sub(e.fadeStart)) / float64(ThemeFadeDuration)
		if progress > 1 {
			progress = 1
		}
		e.doc.Overlay.Opacity = 1 - progress
		return nil
	}
	return nil
}

// apply commits the preference. With skip (or reduced motion) the root
// attributes change in place; otherwise the old background is snapshotted
// into the overlay, the new theme is committed underneath it and the
// overlay fades out.
func (e *Theme) apply(pref theme.Preference, skip bool) tea.Cmd {
	effective := e.resolve(pref)
	previous := theme.Effective(e.doc.Root.Theme)

	if skip || e.reduced() || previous == "" || previous == effective {
		e.cancel()
		e.commit(pref, effective)
		return messages.Cmd(messages.ThemeChangedMsg{})
	}

	e.cancel()
	gen := e.h.next()

	e.doc.Overlay = scene.Overlay{
		Active:  true,
		Color:   theme.LoadPalette(previous).Colors.Background,
		Opacity: 1,
		Fading:  false,
	}
	e.commit(pref, effective)
	e.doc.Root.Transitioning = true

	return tea.Batch(
		messages.Cmd(messages.ThemeChangedMsg{}),
		messages.Cmd(themeFadeStartMsg{gen: gen}),
	)
}

// commit writes the root theme attributes and syncs the select controls.
func (e *Theme) commit(pref theme.Preference, effective theme.Effective) {
	e.active = pref
	e.doc.Root.Theme = string(effective)
	e.doc.Root.ThemePreference = string(pref)
	e.syncSelects(pref)
}

// cancel discards any in-flight crossfade, leaving the committed theme.
func (e *Theme) cancel() {
	e.h.dispose()
	e.doc.Overlay.Reset()
	e.doc.Root.Transitioning = false
}

// settle finishes a completed crossfade.
func (e *Theme) settle() {
	e.doc.Overlay.Reset()
	e.doc.Root.Transitioning = false
	e.h.sub.Stop()
}

func (e *Theme) resolve(pref theme.Preference) theme.Effective {
	return theme.Resolve(pref, e.systemDark)
}

func (e *Theme) reduced() bool {
	return e.reducedMotion != nil && e.reducedMotion()
}

func (e *Theme) syncSelects(pref theme.Preference) {
	for _, sel := range e.selects {
		sel.SetValue(string(pref))
	}
}
