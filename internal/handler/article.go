package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/desenroladireito/desenrola-direito/internal/markdown"
	"github.com/desenroladireito/desenrola-direito/internal/model"
	"github.com/desenroladireito/desenrola-direito/internal/service"
)

// ArticleHandler serves /api/articles and the maintenance removal endpoint.
type ArticleHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

func NewArticleHandler(content *service.ContentService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{content: content, logger: logger}
}

// articleDetail is the single-article response: the joined article plus the
// markdown body rendered to sanitized HTML. List endpoints skip the
// rendering — the frontend only needs it on the article page.
type articleDetail struct {
	model.ArticleWithCategory
	ContentHTML string `json:"contentHtml"`
}

// HandleList returns every article with its category joined.
//
// HTTP: GET /api/articles
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	articles, err := h.content.Articles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleFeatured returns featured articles, most recent first.
//
// HTTP: GET /api/articles/featured
func (h *ArticleHandler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	articles, err := h.content.FeaturedArticles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleRecent returns the most recent articles.
//
// HTTP: GET /api/articles/recent?limit=N
// A missing or unparsable limit falls back to the service default.
func (h *ArticleHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	articles, err := h.content.RecentArticles(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleByCategory lists the articles of one category.
//
// HTTP: GET /api/articles/category/{slug}
//
// DELIBERATE ASYMMETRY: an unknown category returns 200 with an empty
// array, while GET /api/categories/{slug} returns 404. Collection queries
// answer "which articles match?" (possibly none); single-resource queries
// answer "give me this one thing".
func (h *ArticleHandler) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	articles, err := h.content.ArticlesByCategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleSearch runs the case/accent-insensitive substring search.
//
// HTTP: GET /api/articles/search?q=...  (400 when q is missing or blank)
func (h *ArticleHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	articles, err := h.content.SearchArticles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleGetBySlug returns one article with rendered HTML, 404 when absent.
//
// HTTP: GET /api/articles/{slug}
func (h *ArticleHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.content.ArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	contentHTML, err := markdown.ToHTML(article.Content)
	if err != nil {
		h.logger.Error("failed to render article markdown",
			slog.String("slug", article.Slug),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, articleDetail{
		ArticleWithCategory: *article,
		ContentHTML:         contentHTML,
	})
}

// HandleCreate creates an article from a JSON body.
//
// HTTP: POST /api/articles
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ArticleInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	article, err := h.content.CreateArticle(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, article)
}

// HandleRemove deletes a named article. Maintenance-only; not part of the
// public frontend contract.
//
// HTTP: DELETE /api/maintenance/articles/{slug}
func (h *ArticleHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.content.RemoveArticleBySlug(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
