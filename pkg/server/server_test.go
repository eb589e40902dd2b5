package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segue/pkg/site"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "index.md"), []byte("# Home"), 0o644))

	s, err := site.Load(dir)
	require.NoError(t, err)
	return New(s)
}

func TestPing(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLocales(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/locales", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var locales []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locales))
	assert.Equal(t, []string{"en"}, locales)
}

func TestGetPages(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/en", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var slugs []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slugs))
	assert.Equal(t, []string{"index"}, slugs)
}

func TestGetPagesUnknownLocale(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/fr", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticContent(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/index.md", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# Home")
}
