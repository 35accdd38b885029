// Package service contains the business logic layer.
//
// The layering follows the usual three-tier shape: handlers parse HTTP and
// write JSON, services validate and enforce rules, the repository stores
// records. Services receive the repository interface (not the concrete
// store), return domain errors from internal/apperror, and never touch
// status codes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
	"github.com/desenroladireito/desenrola-direito/internal/repository"
	"github.com/desenroladireito/desenrola-direito/internal/slug"
)

// Validation limits. Rune counts, not byte counts: Portuguese titles are
// full of multi-byte characters.
const (
	MaxNameLength    = 120
	MaxTitleLength   = 300
	MaxSlugLength    = 300
	MaxExcerptLength = 1000
	MaxContentLength = 100_000

	DefaultRecentLimit = 3
	MaxRecentLimit     = 50
)

// CategoryInput carries the fields of POST /api/categories. Optional fields
// are plain strings here; empty means absent and is stored as null.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	ImageURL    string `json:"imageUrl"`
}

// ArticleInput carries the fields of POST /api/articles.
type ArticleInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	PublishDate string `json:"publishDate"` // RFC 3339; empty means "now"
	CategoryID  int    `json:"categoryId"`
	Featured    int    `json:"featured"`
}

// SolutionInput carries the fields of POST /api/solutions.
type SolutionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link"`
	LinkText    string `json:"linkText"`
}

// ContentService owns all read/write logic for categories, articles and
// solutions, plus the dormant user operations.
type ContentService struct {
	repo   repository.ContentRepository
	logger *slog.Logger
}

func NewContentService(repo repository.ContentRepository, logger *slog.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

// optional turns an empty string into nil so it stores (and serializes) as
// an explicit null rather than "".
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// resolveSlug trims the provided slug or derives one from the title, then
// checks length. All slugs end up lowercase-ASCII-hyphenated.
func resolveSlug(provided, title string) (string, error) {
	s := strings.TrimSpace(provided)
	if s == "" {
		s = slug.Generate(title)
	}
	if s == "" {
		return "", apperror.ValidationFailed("slug", "slug could not be derived from the title")
	}
	if utf8.RuneCountInString(s) > MaxSlugLength {
		return "", apperror.ValidationFailed("slug", fmt.Sprintf("slug must be %d characters or less", MaxSlugLength))
	}
	return s, nil
}

// --- Categories ---

func (s *ContentService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *ContentService) CategoryBySlug(ctx context.Context, categorySlug string) (*model.Category, error) {
	return s.repo.CategoryBySlug(ctx, strings.TrimSpace(categorySlug))
}

// CreateCategory validates the input, derives the slug when absent, and
// enforces slug uniqueness (the repository itself never validates).
func (s *ContentService) CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "category name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name", fmt.Sprintf("category name must be %d characters or less", MaxNameLength))
	}

	categorySlug, err := resolveSlug(in.Slug, name)
	if err != nil {
		return nil, err
	}

	// Slug uniqueness is an invariant: a second category with the same slug
	// would shadow the first on every lookup.
	if _, err := s.repo.CategoryBySlug(ctx, categorySlug); err == nil {
		return nil, apperror.Conflict("category", categorySlug)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking category slug: %w", err)
	}

	category := &model.Category{
		Name:        name,
		Slug:        categorySlug,
		Description: optional(in.Description),
		IconName:    optional(in.IconName),
		ImageURL:    optional(in.ImageURL),
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		s.logger.Error("failed to create category", slog.String("slug", categorySlug), slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating category: %w", err)
	}

	s.logger.Info("category created", slog.Int("id", category.ID), slog.String("slug", category.Slug))
	return category, nil
}

// --- Articles ---

func (s *ContentService) Articles(ctx context.Context) ([]model.ArticleWithCategory, error) {
	return s.repo.Articles(ctx)
}

func (s *ContentService) ArticleBySlug(ctx context.Context, articleSlug string) (*model.ArticleWithCategory, error) {
	return s.repo.ArticleBySlug(ctx, strings.TrimSpace(articleSlug))
}

func (s *ContentService) ArticlesByCategory(ctx context.Context, categorySlug string) ([]model.ArticleWithCategory, error) {
	return s.repo.ArticlesByCategory(ctx, strings.TrimSpace(categorySlug))
}

func (s *ContentService) FeaturedArticles(ctx context.Context) ([]model.ArticleWithCategory, error) {
	return s.repo.FeaturedArticles(ctx)
}

// RecentArticles clamps the limit to a sane range; zero or negative falls
// back to the default used by the homepage.
func (s *ContentService) RecentArticles(ctx context.Context, limit int) ([]model.ArticleWithCategory, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.RecentArticles(ctx, limit)
}

// SearchArticles rejects blank queries; the repository handles the
// case/accent folding.
func (s *ContentService) SearchArticles(ctx context.Context, query string) ([]model.ArticleWithCategory, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ValidationFailed("q", "search query is required")
	}
	return s.repo.SearchArticles(ctx, query)
}

// CreateArticle validates the payload, resolves the slug, checks the
// category foreign key, and stores the article. PublishDate accepts
// RFC 3339 and defaults to the current time.
func (s *ContentService) CreateArticle(ctx context.Context, in ArticleInput) (*model.ArticleWithCategory, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "article title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, apperror.ValidationFailed("title", fmt.Sprintf("article title must be %d characters or less", MaxTitleLength))
	}
	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		return nil, apperror.ValidationFailed("excerpt", "article excerpt is required")
	}
	if utf8.RuneCountInString(excerpt) > MaxExcerptLength {
		return nil, apperror.ValidationFailed("excerpt", fmt.Sprintf("article excerpt must be %d characters or less", MaxExcerptLength))
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperror.ValidationFailed("content", "article content is required")
	}
	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return nil, apperror.ValidationFailed("content", fmt.Sprintf("article content must be %d characters or less", MaxContentLength))
	}
	if in.Featured != 0 && in.Featured != 1 {
		return nil, apperror.ValidationFailed("featured", "featured must be 0 or 1")
	}

	articleSlug, err := resolveSlug(in.Slug, title)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.ArticleBySlug(ctx, articleSlug); err == nil {
		return nil, apperror.Conflict("article", articleSlug)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking article slug: %w", err)
	}

	// Every article must point at an existing category.
	category, err := s.repo.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ValidationFailed("categoryId", fmt.Sprintf("category %d does not exist", in.CategoryID))
		}
		return nil, fmt.Errorf("resolving category: %w", err)
	}

	publishDate := time.Now().UTC()
	if in.PublishDate != "" {
		publishDate, err = time.Parse(time.RFC3339, in.PublishDate)
		if err != nil {
			return nil, apperror.ValidationFailed("publishDate", "publishDate must be RFC 3339 (e.g. 2025-03-10T00:00:00Z)")
		}
	}

	article := &model.Article{
		Title:       title,
		Slug:        articleSlug,
		Excerpt:     excerpt,
		Content:     in.Content,
		ImageURL:    optional(in.ImageURL),
		PublishDate: publishDate,
		CategoryID:  category.ID,
		Featured:    in.Featured,
	}
	if err := s.repo.CreateArticle(ctx, article); err != nil {
		s.logger.Error("failed to create article", slog.String("slug", articleSlug), slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating article: %w", err)
	}

	s.logger.Info("article created",
		slog.Int("id", article.ID),
		slog.String("slug", article.Slug),
		slog.String("category", category.Slug),
	)
	return &model.ArticleWithCategory{Article: *article, Category: category}, nil
}

// RemoveArticleBySlug backs the maintenance endpoint: resolve the named
// article, then delete by ID. NotFound propagates untouched.
func (s *ContentService) RemoveArticleBySlug(ctx context.Context, articleSlug string) error {
	articleSlug = strings.TrimSpace(articleSlug)
	if articleSlug == "" {
		return apperror.ValidationFailed("slug", "article slug is required")
	}

	article, err := s.repo.ArticleBySlug(ctx, articleSlug)
	if err != nil {
		return err
	}
	return s.repo.RemoveArticle(ctx, article.ID)
}

// --- Solutions ---

func (s *ContentService) Solutions(ctx context.Context) ([]model.Solution, error) {
	return s.repo.Solutions(ctx)
}

func (s *ContentService) CreateSolution(ctx context.Context, in SolutionInput) (*model.Solution, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "solution title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperror.ValidationFailed("description", "solution description is required")
	}
	link := strings.TrimSpace(in.Link)
	if link == "" {
		return nil, apperror.ValidationFailed("link", "solution link is required")
	}
	linkText := strings.TrimSpace(in.LinkText)
	if linkText == "" {
		return nil, apperror.ValidationFailed("linkText", "solution link text is required")
	}

	solution := &model.Solution{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    optional(in.ImageURL),
		Link:        link,
		LinkText:    linkText,
	}
	if err := s.repo.CreateSolution(ctx, solution); err != nil {
		s.logger.Error("failed to create solution", slog.String("title", title), slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating solution: %w", err)
	}

	s.logger.Info("solution created", slog.Int("id", solution.ID), slog.String("title", solution.Title))
	return solution, nil
}
