package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// str returns a pointer for optional seed fields. Absent optionals stay nil
// and serialize as JSON null.
func str(s string) *string { return &s }

// date builds a publish timestamp at midnight UTC.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed loads the fixed content set: 6 categories, 15 articles, 4 solutions.
//
// Seeding is an explicit bootstrap step, not a constructor side effect: any
// failure aborts startup instead of leaving a half-populated store behind a
// running server. Calling Seed twice is a programming error and returns an
// error rather than duplicating content.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.RLock()
	already := len(s.categories) > 0
	s.mu.RUnlock()
	if already {
		return fmt.Errorf("store already seeded")
	}

	categoryIDs := map[string]int{}
	for _, c := range seedCategories() {
		category := c
		if err := s.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Slug, err)
		}
		categoryIDs[category.Slug] = category.ID
	}

	for _, a := range seedArticles() {
		article := a.article
		id, ok := categoryIDs[a.categorySlug]
		if !ok {
			return fmt.Errorf("seeding article %q: unknown category %q", article.Slug, a.categorySlug)
		}
		article.CategoryID = id
		if err := s.CreateArticle(ctx, &article); err != nil {
			return fmt.Errorf("seeding article %q: %w", article.Slug, err)
		}
	}

	for _, sol := range seedSolutions() {
		solution := sol
		if err := s.CreateSolution(ctx, &solution); err != nil {
			return fmt.Errorf("seeding solution %q: %w", sol.Title, err)
		}
	}

	s.mu.RLock()
	s.logger.Info("content store seeded",
		slog.Int("categories", len(s.categories)),
		slog.Int("articles", len(s.articles)),
		slog.Int("solutions", len(s.solutions)),
	)
	s.mu.RUnlock()
	return nil
}
