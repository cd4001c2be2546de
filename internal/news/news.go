// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news retrieves a bounded list of articles for a free-text query
// from a news-search service.
package news

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/pkg/types"
)

// Bounds on the number of articles a user may request.
const (
	MinArticles     = 3
	MaxArticles     = 10
	DefaultArticles = 5
)

// ClampArticles bounds n to [MinArticles, MaxArticles].
func ClampArticles(n int) int {
	return max(MinArticles, min(n, MaxArticles))
}

// Backend queries a single news-search service.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, pageSize int) ([]types.Article, error)
}

// Retriever issues one search per call and converts failures into notices.
type Retriever struct {
	Backend Backend
	Logger  *slog.Logger
}

// NewRetriever returns a Retriever over b. A nil logger uses slog.Default.
func NewRetriever(b Backend, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{Backend: b, Logger: logger}
}

// Retrieve returns at most maxCount articles for query in upstream order.
// A non-positive maxCount leaves the result untruncated. Any failure is
// reported on rep as "Error fetching news: <err>" and yields an empty,
// non-nil slice; Retrieve never returns an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, maxCount int, rep notice.Reporter) []types.Article {
	if rep == nil {
		rep = notice.Discard
	}
	logger := r.logger()

	articles, err := r.Backend.Search(ctx, query, maxCount)
	if err != nil {
		logger.Debug("news search failed",
			"backend", r.Backend.Name(),
			"kind", httputil.Classify(err),
			"timeout", httputil.IsTimeout(err),
			"error", err,
		)
		rep.Report(notice.LevelError, fmt.Sprintf("Error fetching news: %v", err))
		return []types.Article{}
	}

	if maxCount > 0 && len(articles) > maxCount {
		articles = articles[:maxCount]
	}
	if articles == nil {
		articles = []types.Article{}
	}
	logger.Debug("news search complete", "backend", r.Backend.Name(), "count", len(articles))
	return articles
}

func (r *Retriever) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
