// Package repository defines the storage interface the service layer
// programs against. The only implementation in this codebase is the
// in-memory store (repository/memory); tests substitute their own.
package repository

import (
	"context"

	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// ContentRepository owns every record in the system: categories, articles,
// solutions and the dormant user table.
//
// CONTRACT NOTES:
// - Create* methods assign the ID and store a copy of the record; they do
//   not validate (validation lives in the service layer).
// - Single-record lookups return apperror.NotFound when the record is
//   absent. There is no nil-without-error escape hatch — callers cannot
//   accidentally treat a missing record as present.
// - Collection queries return empty slices, never errors, when a filter
//   matches nothing. ArticlesByCategory with an unknown slug is a silent
//   empty result, mirroring the public API's 200-with-[] behaviour.
// - Article reads return the composite joined view; the join is computed
//   per call, never stored.
type ContentRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	CategoryByID(ctx context.Context, id int) (*model.Category, error)

	CreateArticle(ctx context.Context, article *model.Article) error
	Articles(ctx context.Context) ([]model.ArticleWithCategory, error)
	ArticleBySlug(ctx context.Context, slug string) (*model.ArticleWithCategory, error)
	ArticleByID(ctx context.Context, id int) (*model.ArticleWithCategory, error)
	ArticlesByCategory(ctx context.Context, categorySlug string) ([]model.ArticleWithCategory, error)
	FeaturedArticles(ctx context.Context) ([]model.ArticleWithCategory, error)
	RecentArticles(ctx context.Context, limit int) ([]model.ArticleWithCategory, error)
	SearchArticles(ctx context.Context, query string) ([]model.ArticleWithCategory, error)
	RemoveArticle(ctx context.Context, id int) error

	CreateSolution(ctx context.Context, solution *model.Solution) error
	Solutions(ctx context.Context) ([]model.Solution, error)

	CreateUser(ctx context.Context, user *model.User) error
	UserByID(ctx context.Context, id int) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
}
