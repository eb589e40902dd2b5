// Package site loads page content from the site directory. Pages are
// markdown files laid out per locale:
//
//	site/
//	  en/
//	    index.md
//	    pricing.md
//	  ja/
//	    index.md
//
// Missing translations fall back to the default locale.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"segue/pkg/scene"
)

// DefaultLocale is used when a page has no translation for the requested
// locale.
const DefaultLocale = "en"

var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// Page is one loaded page.
type Page struct {
	Slug     string
	Locale   string
	Title    string
	Markdown string
}

// Site is a loaded site directory.
type Site struct {
	dir     string
	locales []string
}

// Load opens a site directory and indexes its locales.
func Load(dir string) (*Site, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading site directory: %w", err)
	}

	var locales []string
	for _, e := range entries {
		// Underscore directories hold shared assets (partials), not
		// locale content.
		if e.IsDir() && !strings.HasPrefix(e.Name(), "_") && !strings.HasPrefix(e.Name(), ".") {
			locales = append(locales, e.Name())
		}
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("site directory %s has no locale directories", dir)
	}
	sort.Strings(locales)

	return &Site{dir: dir, locales: locales}, nil
}

// Dir returns the site directory.
func (s *Site) Dir() string {
	return s.dir
}

// Locales returns the available locales, sorted.
func (s *Site) Locales() []string {
	return s.locales
}

// HasLocale reports whether the locale has its own directory.
func (s *Site) HasLocale(locale string) bool {
	for _, l := range s.locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Pages returns the page slugs available for a locale, sorted.
func (s *Site) Pages(locale string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, locale))
	if err != nil {
		return nil, fmt.Errorf("reading locale directory: %w", err)
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Page loads one page. A missing translation falls back to the default
// locale before failing.
func (s *Site) Page(locale, slug string) (*Page, error) {
	content, err := os.ReadFile(filepath.Join(s.dir, locale, slug+".md"))
	if err != nil && locale != DefaultLocale {
		locale = DefaultLocale
		content, err = os.ReadFile(filepath.Join(s.dir, locale, slug+".md"))
	}
	if err != nil {
		return nil, fmt.Errorf("loading page %s: %w", slug, err)
	}

	markdown := strings.TrimSpace(string(content))
	return &Page{
		Slug:     slug,
		Locale:   locale,
		Title:    pageTitle(markdown, slug),
		Markdown: markdown,
	}, nil
}

// Nodes builds the body content nodes: one per top-level markdown block,
// with the block's links lifted into pressable children.
func (p *Page) Nodes() []*scene.Node {
	var nodes []*scene.Node
	for _, block := range strings.Split(p.Markdown, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		node := &scene.Node{Label: block}
		for _, m := range markdownLink.FindAllStringSubmatch(block, -1) {
			node.Children = append(node.Children, &scene.Node{
				Label:     m[1],
				Href:      m[2],
				Pressable: true,
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func pageTitle(markdown, slug string) string {
	for _, line := range strings.Split(markdown, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return slug
}
