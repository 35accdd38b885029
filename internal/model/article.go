package model

import "time"

// Article is a long-form legal-information piece. Content is markdown-like
// text that may carry embedded ad-placeholder markers, rendered to HTML only
// when a single article is served.
//
// Featured is an int flag (0 or 1) rather than a bool — the value travels
// as 0/1 in the seed data and the API, and keeping the type avoids a silent
// wire-format change.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"imageUrl"`
	PublishDate time.Time `json:"publishDate"`
	CategoryID  int       `json:"categoryId"`
	Featured    int       `json:"featured"`
}

// ArticleWithCategory is the composite read view: an article joined with its
// resolved category. The join is computed on every read, never stored.
// Category is nil only if the referential invariant is broken (an article
// pointing at a category that no longer exists).
type ArticleWithCategory struct {
	Article
	Category *Category `json:"category"`
}
