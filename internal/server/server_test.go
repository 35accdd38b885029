package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desenroladireito/desenrola-direito/internal/config"
	"github.com/desenroladireito/desenrola-direito/internal/mail"
	"github.com/desenroladireito/desenrola-direito/internal/model"
	"github.com/desenroladireito/desenrola-direito/internal/repository/memory"
)

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()

	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "ads.txt"), []byte("google.com, pub-0000, DIRECT\n"), 0o644))

	cfg := &config.Config{
		Host:             "127.0.0.1",
		Port:             8080,
		Env:              "test",
		PublicDir:        publicDir,
		DocsDir:          filepath.Join(publicDir, "docs"),
		ContactRateLimit: rateLimit,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(logger)
	require.NoError(t, store.Seed(context.Background()))

	return New(cfg, logger, store, mail.Disabled{})
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// "featured", "recent" and "search" must resolve as fixed paths, never as
// article slugs.
func TestRouting_FixedPathsWinOverSlug(t *testing.T) {
	s := newTestServer(t, 5)

	for _, target := range []string{
		"/api/articles/featured",
		"/api/articles/recent",
	} {
		rec := get(t, s, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var articles []model.ArticleWithCategory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles), target)
		assert.NotEmpty(t, articles, target)
	}
}

func TestRouting_SeededCatalogue(t *testing.T) {
	s := newTestServer(t, 5)

	rec := get(t, s, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 6)

	rec = get(t, s, "/api/articles")
	require.Equal(t, http.StatusOK, rec.Code)
	var articles []model.ArticleWithCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
	assert.Len(t, articles, 15)

	rec = get(t, s, "/api/solutions")
	require.Equal(t, http.StatusOK, rec.Code)
	var solutions []model.Solution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solutions))
	assert.Len(t, solutions, 4)
}

func TestContactRateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	body := `{"name":"Maria","email":"maria@example.com","subject":"Oi","message":"Uma mensagem qualquer."}`

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:50000"
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)
		return rec
	}

	// The mailer is Disabled, so within-budget requests fail with 500, not
	// 429 — the limiter runs before the handler either way.
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusInternalServerError, post().Code)
	}

	rec := post()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "rate_limited", envelope["error"])
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, 5)

	rec := get(t, s, "/ads.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pub-0000")

	rec = get(t, s, "/favicon.ico")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
