package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return s
}

func TestSeedCounts(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 6 {
		t.Errorf("len(categories) = %d, want 6", len(categories))
	}

	articles, err := s.Articles(ctx)
	if err != nil {
		t.Fatalf("Articles() error = %v", err)
	}
	if len(articles) != 15 {
		t.Errorf("len(articles) = %d, want 15", len(articles))
	}

	solutions, err := s.Solutions(ctx)
	if err != nil {
		t.Fatalf("Solutions() error = %v", err)
	}
	if len(solutions) != 4 {
		t.Errorf("len(solutions) = %d, want 4", len(solutions))
	}
}

func TestSeedTwiceFails(t *testing.T) {
	s := newSeededStore(t)
	if err := s.Seed(context.Background()); err == nil {
		t.Fatal("second Seed() should fail")
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		c := &model.Category{Name: "Cat", Slug: "cat-" + string(rune('a'+want))}
		if err := s.CreateCategory(ctx, c); err != nil {
			t.Fatalf("CreateCategory() error = %v", err)
		}
		if c.ID != want {
			t.Errorf("ID = %d, want %d", c.ID, want)
		}
	}
}

func TestCategoryBySlug_ExactMatch(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	categories, _ := s.Categories(ctx)
	for _, want := range categories {
		got, err := s.CategoryBySlug(ctx, want.Slug)
		if err != nil {
			t.Fatalf("CategoryBySlug(%q) error = %v", want.Slug, err)
		}
		if got.Slug != want.Slug {
			t.Errorf("Slug = %q, want %q", got.Slug, want.Slug)
		}
	}

	// Slug matching is case-sensitive: the uppercased slug must miss.
	if _, err := s.CategoryBySlug(ctx, "DIREITO-CONSUMIDOR"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("uppercased slug: error = %v, want ErrNotFound", err)
	}
}

func TestCategoryBySlug_NotFound(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.CategoryBySlug(context.Background(), "does-not-exist")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestArticlesJoinCategory(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	articles, err := s.Articles(ctx)
	if err != nil {
		t.Fatalf("Articles() error = %v", err)
	}
	for _, a := range articles {
		if a.Category == nil {
			t.Fatalf("article %q: joined category is nil", a.Slug)
		}
		if a.Category.ID != a.CategoryID {
			t.Errorf("article %q: category.ID = %d, want %d", a.Slug, a.Category.ID, a.CategoryID)
		}
	}
}

func TestFeaturedArticles(t *testing.T) {
	s := newSeededStore(t)

	featured, err := s.FeaturedArticles(context.Background())
	if err != nil {
		t.Fatalf("FeaturedArticles() error = %v", err)
	}
	if len(featured) == 0 {
		t.Fatal("expected at least one featured article in the seed set")
	}
	for i, a := range featured {
		if a.Featured != 1 {
			t.Errorf("article %q: Featured = %d, want 1", a.Slug, a.Featured)
		}
		if i > 0 && featured[i-1].PublishDate.Before(a.PublishDate) {
			t.Errorf("featured not sorted: %v before %v", featured[i-1].PublishDate, a.PublishDate)
		}
	}
}

func TestRecentArticles(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	recent, err := s.RecentArticles(ctx, 3)
	if err != nil {
		t.Fatalf("RecentArticles() error = %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i-1].PublishDate.Before(recent[i].PublishDate) {
			t.Errorf("recent not sorted descending at index %d", i)
		}
	}

	// A limit beyond the total returns everything.
	all, err := s.RecentArticles(ctx, 1000)
	if err != nil {
		t.Fatalf("RecentArticles(1000) error = %v", err)
	}
	if len(all) != 15 {
		t.Errorf("len(all) = %d, want 15", len(all))
	}
}

func TestRecentArticles_TieBreakInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.Category{Name: "Cat", Slug: "cat"}
	if err := s.CreateCategory(ctx, c); err != nil {
		t.Fatal(err)
	}
	sameDay := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, slug := range []string{"primeiro", "segundo", "terceiro"} {
		a := &model.Article{Title: slug, Slug: slug, CategoryID: c.ID, PublishDate: sameDay}
		if err := s.CreateArticle(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := s.RecentArticles(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	// Equal dates keep insertion (ID) order under the stable sort.
	wantOrder := []string{"primeiro", "segundo", "terceiro"}
	for i, want := range wantOrder {
		if recent[i].Slug != want {
			t.Errorf("recent[%d].Slug = %q, want %q", i, recent[i].Slug, want)
		}
	}
}

func TestArticlesByCategory_UnknownSlugIsEmptyNotError(t *testing.T) {
	s := newSeededStore(t)

	articles, err := s.ArticlesByCategory(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("ArticlesByCategory() error = %v, want nil", err)
	}
	if len(articles) != 0 {
		t.Errorf("len(articles) = %d, want 0", len(articles))
	}
}

func TestArticlesByCategory_FiltersByCategory(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	articles, err := s.ArticlesByCategory(ctx, "direito-familia")
	if err != nil {
		t.Fatalf("ArticlesByCategory() error = %v", err)
	}
	if len(articles) == 0 {
		t.Fatal("expected family-law articles in the seed set")
	}
	for _, a := range articles {
		if a.Category == nil || a.Category.Slug != "direito-familia" {
			t.Errorf("article %q filed under wrong category", a.Slug)
		}
	}
}

func TestSearchArticles_CaseInsensitive(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	upper, err := s.SearchArticles(ctx, "GOLPES")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := s.SearchArticles(ctx, "golpes")
	if err != nil {
		t.Fatal(err)
	}
	if len(upper) == 0 {
		t.Fatal("expected matches for GOLPES")
	}
	if len(upper) != len(lower) {
		t.Fatalf("case sensitivity leak: %d vs %d results", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].ID != lower[i].ID {
			t.Errorf("result %d differs between GOLPES and golpes", i)
		}
	}
}

func TestSearchArticles_AccentInsensitive(t *testing.T) {
	s := newSeededStore(t)

	// "pensao" (no diacritics) must find the Pensão Alimentícia article.
	results, err := s.SearchArticles(context.Background(), "pensao")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range results {
		if a.Slug == "pensao-alimenticia-valores-calculo" {
			found = true
		}
	}
	if !found {
		t.Error("search for 'pensao' did not return the Pensão Alimentícia article")
	}
}

func TestSearchArticles_NoMatches(t *testing.T) {
	s := newSeededStore(t)

	results, err := s.SearchArticles(context.Background(), "zzzznotfound")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestRemoveArticle(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	before, _ := s.Articles(ctx)

	// Unknown ID: NotFound, size unchanged.
	if err := s.RemoveArticle(ctx, 9999); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("RemoveArticle(9999) error = %v, want ErrNotFound", err)
	}
	after, _ := s.Articles(ctx)
	if len(after) != len(before) {
		t.Errorf("size changed after failed removal: %d -> %d", len(before), len(after))
	}

	// Known ID: success, size shrinks by exactly one.
	target := before[0]
	if err := s.RemoveArticle(ctx, target.ID); err != nil {
		t.Fatalf("RemoveArticle(%d) error = %v", target.ID, err)
	}
	after, _ = s.Articles(ctx)
	if len(after) != len(before)-1 {
		t.Errorf("len(after) = %d, want %d", len(after), len(before)-1)
	}
	if _, err := s.ArticleByID(ctx, target.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("removed article still retrievable: err = %v", err)
	}
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &model.User{Username: "admin", Password: "$2a$10$fakehash"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if u.ID != 1 {
		t.Errorf("ID = %d, want 1", u.ID)
	}

	byName, err := s.UserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("UserByUsername() error = %v", err)
	}
	if byName.ID != u.ID {
		t.Errorf("UserByUsername ID = %d, want %d", byName.ID, u.ID)
	}

	if _, err := s.UserByUsername(ctx, "ghost"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLookupsReturnCopies(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	first, err := s.CategoryByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	first.Name = "mutated"

	again, err := s.CategoryByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if again.Name == "mutated" {
		t.Error("mutating a returned record leaked into the store")
	}
}
