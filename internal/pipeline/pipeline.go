// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one research interaction through its states:
// Idle -> Submitted -> Fetching -> (Summarizing -> Rendered | NoResults).
//
// Each Session owns its query, results, and notices. Surfaces bind their
// submit action to Session.Submit followed by Fetch and Summarize, or call
// Run to do all three.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/pkg/types"
)

// User-visible notice texts.
const (
	MsgEmptyQuery = "Please enter a query to search for news."
	MsgNoResults  = "No articles found for your query. Try a different search term."
	msgFoundFmt   = "Found %d articles"
)

var (
	// ErrEmptyQuery is returned by Submit when the query is blank.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrBusy is returned by Submit while a fetch or summary is in flight.
	ErrBusy = errors.New("an interaction is already in progress")
)

// Retriever fetches articles for a query. Failures are reported on rep and
// yield an empty slice.
type Retriever interface {
	Retrieve(ctx context.Context, query string, maxCount int, rep notice.Reporter) []types.Article
}

// Summarizer produces summary text. Failures are reported on rep and yield
// a placeholder.
type Summarizer interface {
	Generate(ctx context.Context, query string, articles []types.Article, rep notice.Reporter) string
}

// Pipeline holds the two components shared by every session.
type Pipeline struct {
	retriever  Retriever
	summarizer Summarizer
	logger     *slog.Logger
}

// New returns a Pipeline. A nil logger uses slog.Default.
func New(r Retriever, s Summarizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{retriever: r, summarizer: s, logger: logger}
}

// NewSession returns an Idle session bound to p.
func (p *Pipeline) NewSession() *Session {
	return &Session{
		p:       p,
		state:   Idle,
		notices: notice.NewCollector(p.logger),
	}
}

// Run executes one full interaction on a fresh session and returns its
// result. The error is ErrEmptyQuery for a blank query and nil otherwise;
// service failures appear as notices in the result.
func (p *Pipeline) Run(ctx context.Context, query string, maxArticles int) (Result, error) {
	return p.NewSession().Run(ctx, query, maxArticles)
}
