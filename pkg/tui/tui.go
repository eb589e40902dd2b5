// Package tui is the page shell: one model per page, torn down and rebuilt
// across navigation the way a browser rebuilds the document. The shell
// routes messages between the transition engines, renders the committed
// theme and owns the keyboard focus ring over the page's links.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"segue/pkg/footer"
	"segue/pkg/httpclient"
	"segue/pkg/prefs"
	"segue/pkg/scene"
	"segue/pkg/site"
	"segue/pkg/theme"
	"segue/pkg/transition"
	"segue/pkg/tui/animation"
	"segue/pkg/tui/components/themeselect"
	"segue/pkg/tui/messages"
	"segue/pkg/tui/styles"
	"segue/pkg/userconfig"
)

// pageOrigin is the synthetic origin page links resolve against, so the
// engine's same-origin guard can tell site links from external ones.
const pageOrigin = "segue://site"

// Options configures the shell.
type Options struct {
	Site      *site.Site
	Store     *prefs.Store
	Config    *userconfig.Config
	Slug      string
	Locale    string
	FooterURL string
}

// KeyMap defines the shell keybindings.
type KeyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Activate  key.Binding
	Locale    key.Binding
	Suspend   key.Binding
}

// DefaultKeyMap returns the default shell keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next link"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous link"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "follow link"),
		),
		Locale: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "switch language"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
	}
}

type appModel struct {
	ctx  context.Context
	opts Options

	doc      *scene.Document
	themeEng *transition.Theme
	pageEng  *transition.Page
	language *transition.Language

	themeSelect *themeselect.Model
	loader      *footer.Loader
	footerRoots []*scene.Node

	page     *site.Page
	slug     string
	locale   string
	rendered string

	keyMap KeyMap

	// focus indexes the pressable page links; len(links) means the theme
	// select control.
	focus int

	systemDark    bool
	systemDarkSet bool
	reduced       bool

	width, height int
}

// New builds the shell model for the given page.
func New(ctx context.Context, opts Options) (tea.Model, error) {
	m := &appModel{
		ctx:         ctx,
		opts:        opts,
		doc:         scene.NewDocument(),
		themeSelect: themeselect.New(),
		keyMap:      DefaultKeyMap(),
		locale:      opts.Locale,
		reduced:     opts.Config.ReducedMotion(),
	}
	if m.locale == "" {
		m.locale = site.DefaultLocale
	}

	if err := m.loadPage(opts.Slug); err != nil {
		return nil, err
	}

	reduced := func() bool { return m.reduced }
	systemDark := func() bool { return m.systemDark }

	m.themeEng = transition.NewTheme(m.doc, opts.Store, systemDark, reduced)
	m.themeEng.Attach(m.themeSelect)
	m.pageEng = transition.NewPage(m.doc, opts.Store, pageOrigin+"/"+m.slug, reduced)
	m.language = transition.NewLanguage(m.doc.Body, m.swapLocale, transition.DefaultLanguageFade, reduced)
	m.language.Apply(m.locale, false)

	if opts.FooterURL != "" {
		m.loader = footer.NewLoader(httpclient.New(), opts.FooterURL)
	}

	return m, nil
}

// Run builds the shell, wires the cross-process preference and config
// watchers and runs the program until it exits.
func Run(ctx context.Context, opts Options) error {
	model, err := New(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))

	watcher := prefs.NewWatcher(prefs.DurablePath(), func(value string) {
		p.Send(messages.PreferenceStoreChangedMsg{Value: value})
	})
	if err := watcher.Watch(); err != nil {
		slog.Warn("Preference watcher unavailable", "error", err)
	}
	defer watcher.Stop()

	// The reduced-motion setting can change mid-session when the config
	// file is edited from another terminal.
	reduced := opts.Config.ReducedMotion()
	cfgWatcher := prefs.NewFileWatcher(userconfig.Path(), func() {
		cfg, err := userconfig.Load()
		if err != nil {
			slog.Warn("Reloading user config failed", "error", err)
			return
		}
		if enabled := cfg.ReducedMotion(); enabled != reduced {
			reduced = enabled
			p.Send(messages.ReducedMotionChangedMsg{Enabled: enabled})
		}
	})
	if err := cfgWatcher.Watch(); err != nil {
		slog.Warn("Config watcher unavailable", "error", err)
	}
	defer cfgWatcher.Stop()

	_, err = p.Run()
	return err
}

func (m *appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.RequestBackgroundColor,
		m.themeEng.Init(),
		m.pageEng.Show(),
	}
	if m.loader != nil {
		cmds = append(cmds, m.loader.Load(m.ctx))
	}
	return tea.Batch(cmds...)
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rendered = ""
		return m, nil

	case tea.BackgroundColorMsg:
		dark := styles.IsDarkColor(msg.Color)
		changed := m.systemDarkSet && dark != m.systemDark
		m.systemDark = dark
		m.systemDarkSet = true
		if changed {
			return m, messages.Cmd(messages.SystemThemeChangedMsg{Dark: dark})
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.ResumeMsg:
		// Coming back from a suspend shows the same page model again,
		// like a document restored from the back/forward cache.
		return m, messages.Cmd(messages.PageRestoredMsg{Persisted: true})

	case animation.TickMsg:
		cmds := []tea.Cmd{
			m.themeEng.Update(msg),
			m.pageEng.Update(msg),
		}
		if animation.HasActive() {
			cmds = append(cmds, animation.StartTick())
		}
		return m, tea.Batch(cmds...)

	case messages.ThemeChangedMsg:
		styles.Apply(theme.LoadPalette(theme.Effective(m.doc.Root.Theme)))
		m.rendered = ""
		return m, nil

	case messages.NavigateMsg:
		return m, m.navigate(msg.Target)

	case messages.FooterLoadedMsg:
		m.footerRoots = msg.Roots
		scene.FocusPressables(msg.Roots...)
		m.doc.Body.Children = append(m.doc.Body.Children, msg.Roots...)
		return m, nil

	case messages.ReducedMotionChangedMsg:
		m.reduced = msg.Enabled
	}

	// Everything else is engine traffic, including the engines' own
	// scheduled timer messages.
	return m, tea.Batch(
		m.themeEng.Update(msg),
		m.pageEng.Update(msg),
		m.language.Update(msg),
	)
}

func (m *appModel) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.NextFocus):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevFocus):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.Locale):
		return m, messages.Cmd(messages.LocaleSelectedMsg{Locale: m.nextLocale()})

	case key.Matches(msg, m.keyMap.Suspend):
		return m, tea.Suspend

	case key.Matches(msg, m.keyMap.Activate):
		return m, m.activateFocused(msg)
	}

	if m.themeSelect.Focused() {
		return m, m.themeSelect.Update(msg)
	}
	return m, nil
}

// activateFocused follows the focused link through the page engine. A
// modified activation keeps native behavior, like a modifier-clicked link.
func (m *appModel) activateFocused(msg tea.KeyPressMsg) tea.Cmd {
	links := m.links()
	if m.focus >= len(links) {
		return nil
	}
	node := links[m.focus]

	details := transition.ActivationDetails{
		Modified: msg.Mod != 0,
	}
	cmd, intercepted := m.pageEng.Activate(node, details)
	if intercepted {
		return cmd
	}

	// Native navigation: site links jump without a transition, anything
	// else is outside the page's world.
	if strings.HasPrefix(node.Href, "/") && !details.Modified {
		return messages.Cmd(messages.NavigateMsg{Target: node.Href})
	}
	slog.Info("Link kept native behavior", "href", node.Href)
	return nil
}

// navigate is the hard navigation boundary: the body and the page engine
// are torn down and rebuilt for the target page.
func (m *appModel) navigate(target string) tea.Cmd {
	slug := strings.Trim(strings.TrimPrefix(target, pageOrigin), "/")
	slug = strings.TrimSuffix(slug, ".md")
	if slug == "" {
		slug = "index"
	}

	if err := m.loadPage(slug); err != nil {
		slog.Error("Navigation failed", "target", target, "error", err)
		return nil
	}

	reduced := func() bool { return m.reduced }
	m.doc.Overlay.Reset()
	m.pageEng = transition.NewPage(m.doc, m.opts.Store, pageOrigin+"/"+m.slug, reduced)
	m.language = transition.NewLanguage(m.doc.Body, m.swapLocale, transition.DefaultLanguageFade, reduced)
	m.language.Apply(m.locale, false)
	m.focus = 0

	cmds := []tea.Cmd{
		m.themeEng.Refresh(m.doc.Body.Children...),
		m.pageEng.Show(),
	}
	if m.loader != nil {
		cmds = append(cmds, m.loader.Load(m.ctx))
	}
	return tea.Batch(cmds...)
}

// loadPage replaces the body with the target page's content.
func (m *appModel) loadPage(slug string) error {
	if slug == "" {
		slug = "index"
	}
	page, err := m.opts.Site.Page(m.locale, slug)
	if err != nil {
		return err
	}

	m.page = page
	m.slug = slug
	m.rendered = ""
	m.doc.Body = &scene.Body{Children: page.Nodes()}
	scene.FocusPressables(m.doc.Body.Children...)
	return nil
}

// swapLocale is the language helper's update function: it reloads the
// current page in the new locale and reports the locale actually served.
func (m *appModel) swapLocale(locale string) string {
	m.locale = locale
	page, err := m.opts.Site.Page(locale, m.slug)
	if err != nil {
		slog.Warn("Locale swap failed", "locale", locale, "error", err)
		return locale
	}
	m.page = page
	m.rendered = ""
	m.doc.Body.Children = append(page.Nodes(), m.footerRoots...)
	scene.FocusPressables(m.doc.Body.Children...)
	return page.Locale
}

func (m *appModel) nextLocale() string {
	locales := m.opts.Site.Locales()
	for i, l := range locales {
		if l == m.locale {
			return locales[(i+1)%len(locales)]
		}
	}
	return site.DefaultLocale
}

// links returns the pressable link nodes in focus-ring order.
func (m *appModel) links() []*scene.Node {
	var links []*scene.Node
	var walk func(nodes []*scene.Node)
	walk = func(nodes []*scene.Node) {
		for _, n := range nodes {
			if n.Pressable && n.Href != "" {
				links = append(links, n)
			}
			walk(n.Children)
		}
	}
	walk(m.doc.Body.Children)
	return links
}

func (m *appModel) moveFocus(delta int) {
	stops := len(m.links()) + 1
	m.focus = (m.focus + delta + stops) % stops
	if m.focus == stops-1 {
		m.themeSelect.Focus()
	} else {
		m.themeSelect.Blur()
	}
}

func (m *appModel) View() tea.View {
	return tea.NewView(m.view())
}

func (m *appModel) view() string {
	if m.width == 0 || m.page == nil {
		return ""
	}

	bg := styles.Background()
	if m.doc.Overlay.Active {
		bg = styles.BlendHex(bg, m.doc.Overlay.Color, m.doc.Overlay.Opacity)
	}
	frame := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Width(m.width)

	var b strings.Builder
	b.WriteString(styles.Heading.Render(m.page.Title))
	b.WriteString("  ")
	b.WriteString(m.themeSelect.View())
	b.WriteString("\n")
	b.WriteString(styles.Separator.Render(strings.Repeat("─", min(m.width, 60))))
	b.WriteString("\n")

	if m.bodyHidden() {
		return frame.Render(b.String())
	}

	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderLinks())
	b.WriteString(m.renderFooter())

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "…")
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// bodyHidden reports whether the body content is staged out of sight: a
// page fade in its hidden phase, or a language fade past its midpoint.
func (m *appModel) bodyHidden() bool {
	if m.doc.Body.Faded && !m.doc.Body.Visible {
		return true
	}
	return m.doc.Body.LangPhase == "out" || m.doc.Body.LangPhase == "ready"
}

func (m *appModel) renderBody() string {
	if m.rendered == "" {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.MarkdownStyle()),
			glamour.WithWordWrap(min(m.width, 100)),
		)
		if err != nil {
			return styles.ErrorText.Render(err.Error())
		}
		out, err := renderer.Render(m.page.Markdown)
		if err != nil {
			return styles.ErrorText.Render(err.Error())
		}
		m.rendered = out
	}
	return m.rendered
}

func (m *appModel) renderLinks() string {
	links := m.links()
	if len(links) == 0 {
		return ""
	}

	parts := make([]string, 0, len(links))
	for i, link := range links {
		label := " " + link.Label + " "
		if i == m.focus {
			parts = append(parts, styles.LinkFocused.Render(label))
		} else {
			parts = append(parts, styles.Link.Render(label))
		}
	}
	return styles.Subtle.Render("Links: ") + strings.Join(parts, " ") + "\n"
}

func (m *appModel) renderFooter() string {
	if len(m.footerRoots) == 0 {
		return ""
	}

	var b strings.Builder
	for _, root := range m.footerRoots {
		b.WriteString(root.Label)
		b.WriteString("\n")
	}
	return styles.Footer.Render(strings.TrimRight(b.String(), "\n"))
}
