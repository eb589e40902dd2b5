package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoadIndexesLocales(t *testing.T) {
	t.Parallel()
	dir := writeSite(t, map[string]string{
		"en/index.md": "# Home",
		"ja/index.md": "# ホーム",
	})

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "ja"}, s.Locales())
	assert.True(t, s.HasLocale("ja"))
	assert.False(t, s.HasLocale("fr"))
}

func TestLoadSkipsAssetDirectories(t *testing.T) {
	t.Parallel()
	dir := writeSite(t, map[string]string{
		"en/index.md":         "# Home",
		"_partials/footer.md": "footer",
		".cache/stale.md":     "old",
		"README.md":           "not a locale",
	})

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, s.Locales())
}

func TestLoadEmptyDirectoryFails(t *testing.T) {
	t.Parallel()
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestPageLoadsAndTitles(t *testing.T) {
	t.Parallel()
	dir := writeSite(t, map[string]string{
		"en/pricing.md": "# Pricing\n\nPlans start free.",
	})
	s, err := Load(dir)
	require.NoError(t, err)

	p, err := s.Page("en", "pricing")
	require.NoError(t, err)
	assert.Equal(t, "Pricing", p.Title)
	assert.Equal(t, "en", p.Locale)
	assert.Contains(t, p.Markdown, "Plans start free.")
}

func TestPageFallsBackToDefaultLocale(t *testing.T) {
	t.Parallel()
	dir := writeSite(t, map[string]string{
		"en/about.md": "# About",
		"ja/index.md": "# ホーム",
	})
	s, err := Load(dir)
	require.NoError(t, err)

	p, err := s.Page("ja", "about")
	require.NoError(t, err)
	assert.Equal(t, "en", p.Locale)

	_, err = s.Page("ja", "missing")
	assert.Error(t, err)
}

func TestPagesListsSlugs(t *testing.T) {
	t.Parallel()
	dir := writeSite(t, map[string]string{
		"en/index.md":   "# Home",
		"en/pricing.md": "# Pricing",
		"en/notes.txt":  "not a page",
	})
	s, err := Load(dir)
	require.NoError(t, err)

	slugs, err := s.Pages("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "pricing"}, slugs)
}

func TestNodesSplitBlocksAndLiftLinks(t *testing.T) {
	t.Parallel()
	p := &Page{
		Slug:     "index",
		Markdown: "# Home\n\nSee [pricing](/pricing) and [docs](/docs).\n\nPlain block.",
	}

	nodes := p.Nodes()
	require.Len(t, nodes, 3)
	assert.Empty(t, nodes[0].Children)

	links := nodes[1].Children
	require.Len(t, links, 2)
	assert.Equal(t, "pricing", links[0].Label)
	assert.Equal(t, "/pricing", links[0].Href)
	assert.True(t, links[0].Pressable)
	assert.Equal(t, "/docs", links[1].Href)
}
