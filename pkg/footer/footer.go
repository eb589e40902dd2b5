// Package footer loads the shared footer partial over HTTP and converts it
// into page nodes. Loading is best-effort: failures inject an inline error
// node instead, and the loaded signal is emitted either way so focus
// normalization always runs over the injected subtree.
package footer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	tea "charm.land/bubbletea/v2"

	"segue/pkg/scene"
	"segue/pkg/tui/messages"
)

// failureLabel is the inline fallback shown when the partial cannot load.
const failureLabel = "Footer failed to load."

// maxPartialSize caps the partial body read.
const maxPartialSize = 1 << 20

var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// Loader fetches the footer partial.
type Loader struct {
	client *http.Client
	url    string
}

// NewLoader builds a loader fetching the partial from the given URL.
func NewLoader(client *http.Client, url string) *Loader {
	return &Loader{client: client, url: url}
}

// Load returns a command that fetches and converts the partial. The
// resulting message always carries at least one root node.
func (l *Loader) Load(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		roots, err := l.fetch(ctx)
		if err != nil {
			slog.Warn("footer partial failed to load", "url", l.url, "error", err)
			roots = []*scene.Node{{Label: failureLabel, TransitionIgnore: true}}
		}
		return messages.FooterLoadedMsg{Roots: roots}
	}
}

func (l *Loader) fetch(ctx context.Context) ([]*scene.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPartialSize))
	if err != nil {
		return nil, err
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return nil, fmt.Errorf("converting partial: %w", err)
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, fmt.Errorf("partial is empty")
	}

	root := &scene.Node{
		Label:            markdown,
		TransitionIgnore: true,
		Children:         extractLinks(markdown),
	}
	return []*scene.Node{root}, nil
}

// extractLinks lifts the partial's links into pressable child nodes so the
// focus normalizer can reach them.
func extractLinks(markdown string) []*scene.Node {
	var links []*scene.Node
	for _, m := range markdownLink.FindAllStringSubmatch(markdown, -1) {
		links = append(links, &scene.Node{
			Label:     m[1],
			Href:      m[2],
			Pressable: true,
		})
	}
	return links
}
