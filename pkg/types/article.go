// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the news-research pipeline:
// the Article records produced by the retriever and the configuration passed
// to the components that call external services.
package types

import (
	"strings"
	"time"
)

// Placeholder text shown when the search service omits a field.
const (
	PlaceholderTitle       = "No title"
	PlaceholderDescription = "No description"
	PlaceholderSource      = "Unknown"
)

// Article is a single news item returned by the search service. Every field
// is optional; the Display accessors substitute placeholders for blank values.
type Article struct {
	// Title is the headline as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Description is the short teaser text for the article.
	Description string `json:"description" yaml:"description"`

	// SourceName is the publisher name (e.g. "Reuters").
	SourceName string `json:"source_name" yaml:"source_name"`

	// URL links to the full article.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Author is the byline, when the service reports one.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// PublishedAt is the publication timestamp; zero when unknown.
	PublishedAt time.Time `json:"published_at,omitzero" yaml:"published_at,omitempty"`
}

// DisplayTitle returns the title or PlaceholderTitle when it is blank.
func (a Article) DisplayTitle() string {
	return orDefault(a.Title, PlaceholderTitle)
}

// DisplayDescription returns the description or PlaceholderDescription when it is blank.
func (a Article) DisplayDescription() string {
	return orDefault(a.Description, PlaceholderDescription)
}

// DisplaySource returns the source name or PlaceholderSource when it is blank.
func (a Article) DisplaySource() string {
	return orDefault(a.SourceName, PlaceholderSource)
}

// HasLink reports whether the article carries a link to the full text.
func (a Article) HasLink() bool {
	return strings.TrimSpace(a.URL) != ""
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
