// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain value types with JSON
// struct tags, no behaviour attached.
//
// OPTIONAL FIELDS AS POINTERS:
// Fields that may legitimately be absent (description, images, icons) are
// pointers. A nil pointer serializes as JSON null, which is exactly what the
// frontend expects for "not set" — as opposed to an empty string, which would
// be indistinguishable from a deliberately blank value.
package model

// Category groups articles by area of law (consumer, labour, family, ...).
//
// Slug is the URL-safe unique key (e.g. "direito-consumidor") and is
// immutable once the category is created.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	IconName    *string `json:"iconName"`
	ImageURL    *string `json:"imageUrl"`
}
