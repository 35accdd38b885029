// Package memory implements repository.ContentRepository with plain maps.
//
// WHY NO DATABASE?
// The whole corpus is a few dozen records created once at boot. A database
// buys durability and multi-process access; this site needs neither, and the
// original system made the same call. What we DO need under Go's concurrent
// net/http server is mutual exclusion — the original ran on a single-threaded
// event loop and got per-operation atomicity for free, so the RWMutex here
// is the equivalent guarantee, not extra scope. Reads take the shared lock
// and never block each other.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
	"github.com/desenroladireito/desenrola-direito/internal/slug"
)

// Store holds all application records, keyed by auto-incrementing int IDs.
// Each entity has its own map and counter; counters start at 1 and never
// reuse IDs, so duplicates are impossible by construction.
type Store struct {
	mu sync.RWMutex

	categories map[int]model.Category
	articles   map[int]model.Article
	solutions  map[int]model.Solution
	users      map[int]model.User

	nextCategoryID int
	nextArticleID  int
	nextSolutionID int
	nextUserID     int

	logger *slog.Logger
}

// New creates an empty Store. Call Seed to load the fixed content set.
func New(logger *slog.Logger) *Store {
	return &Store{
		categories:     make(map[int]model.Category),
		articles:       make(map[int]model.Article),
		solutions:      make(map[int]model.Solution),
		users:          make(map[int]model.User),
		nextCategoryID: 1,
		nextArticleID:  1,
		nextSolutionID: 1,
		nextUserID:     1,
		logger:         logger,
	}
}

// --- Categories ---

func (s *Store) CreateCategory(_ context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = *category
	return nil
}

func (s *Store) Categories(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, c)
	}
	// Map iteration order is random in Go; list in ID (insertion) order.
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) CategoryBySlug(_ context.Context, categorySlug string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Slug matching is exact and case-sensitive.
	for _, c := range s.categories {
		if c.Slug == categorySlug {
			result := c
			return &result, nil
		}
	}
	return nil, apperror.NotFound("category", categorySlug)
}

func (s *Store) CategoryByID(_ context.Context, id int) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category", strconv.Itoa(id))
	}
	result := c
	return &result, nil
}

// --- Articles ---

func (s *Store) CreateArticle(_ context.Context, article *model.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.nextArticleID
	s.nextArticleID++
	s.articles[article.ID] = *article
	return nil
}

// withCategory joins one article with its resolved category. Callers must
// hold at least the read lock. A nil Category means the referential
// invariant was broken, which create-side validation prevents.
func (s *Store) withCategory(a model.Article) model.ArticleWithCategory {
	joined := model.ArticleWithCategory{Article: a}
	if c, ok := s.categories[a.CategoryID]; ok {
		category := c
		joined.Category = &category
	}
	return joined
}

// articlesByID returns all articles joined, in ascending ID order. This is
// the stable base order for every list operation: date sorts use
// sort.SliceStable on top of it, so articles sharing a publish date
// tie-break on insertion order.
func (s *Store) articlesByID() []model.ArticleWithCategory {
	result := make([]model.ArticleWithCategory, 0, len(s.articles))
	for _, a := range s.articles {
		result = append(result, s.withCategory(a))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *Store) Articles(_ context.Context) ([]model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articlesByID(), nil
}

func (s *Store) ArticleBySlug(_ context.Context, articleSlug string) (*model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == articleSlug {
			joined := s.withCategory(a)
			return &joined, nil
		}
	}
	return nil, apperror.NotFound("article", articleSlug)
}

func (s *Store) ArticleByID(_ context.Context, id int) (*model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, apperror.NotFound("article", strconv.Itoa(id))
	}
	joined := s.withCategory(a)
	return &joined, nil
}

// ArticlesByCategory resolves the category first. An unknown category slug
// yields an empty slice, not an error — the public API returns 200 with []
// for collection queries, and this is where that asymmetry starts.
func (s *Store) ArticlesByCategory(_ context.Context, categorySlug string) ([]model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categoryID int
	found := false
	for _, c := range s.categories {
		if c.Slug == categorySlug {
			categoryID = c.ID
			found = true
			break
		}
	}
	if !found {
		return []model.ArticleWithCategory{}, nil
	}

	result := []model.ArticleWithCategory{}
	for _, a := range s.articlesByID() {
		if a.CategoryID == categoryID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *Store) FeaturedArticles(_ context.Context) ([]model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []model.ArticleWithCategory{}
	for _, a := range s.articlesByID() {
		if a.Featured == 1 {
			result = append(result, a)
		}
	}
	sortByDateDesc(result)
	return result, nil
}

func (s *Store) RecentArticles(_ context.Context, limit int) ([]model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := s.articlesByID()
	sortByDateDesc(result)
	if limit >= 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// SearchArticles does a case- and accent-insensitive substring match against
// title, excerpt and content. "GOLPES", "golpes" and "pensao" vs "Pensão"
// all behave the same. No ranking, no pagination.
func (s *Store) SearchArticles(_ context.Context, query string) ([]model.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := slug.Normalize(query)
	result := []model.ArticleWithCategory{}
	for _, a := range s.articlesByID() {
		if strings.Contains(slug.Normalize(a.Title), needle) ||
			strings.Contains(slug.Normalize(a.Excerpt), needle) ||
			strings.Contains(slug.Normalize(a.Content), needle) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *Store) RemoveArticle(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return apperror.NotFound("article", strconv.Itoa(id))
	}
	delete(s.articles, id)

	// Log-only audit trail, same as the original.
	s.logger.Info("article removed",
		slog.Int("id", id),
		slog.String("slug", a.Slug),
		slog.String("title", a.Title),
	)
	return nil
}

// --- Solutions ---

func (s *Store) CreateSolution(_ context.Context, solution *model.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	solution.ID = s.nextSolutionID
	s.nextSolutionID++
	s.solutions[solution.ID] = *solution
	return nil
}

func (s *Store) Solutions(_ context.Context) ([]model.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Solution, 0, len(s.solutions))
	for _, sol := range s.solutions {
		result = append(result, sol)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// --- Users (no routes; kept to mirror the original's dormant scaffolding) ---

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return nil
}

func (s *Store) UserByID(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", strconv.Itoa(id))
	}
	result := u
	return &result, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			result := u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

// sortByDateDesc orders most-recent-first. SliceStable keeps the incoming
// (ID) order for equal dates.
func sortByDateDesc(articles []model.ArticleWithCategory) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishDate.After(articles[j].PublishDate)
	})
}
