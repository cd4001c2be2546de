// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary formats retrieved articles into a research prompt and asks a
// hosted text-completion service for a summary.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/internal/notice"
	"github.com/pdiddy/news-research/pkg/types"
)

// ErrorPlaceholder is returned in place of a summary when the completion
// request fails.
const ErrorPlaceholder = "Error generating summary"

// Completer sends one prompt to a completion service and returns the text
// of the first choice. Implementations issue a single non-streaming request
// with no retries.
type Completer interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter returns the Completer selected by cfg.AI.Provider.
func NewCompleter(cfg *types.Config) (Completer, error) {
	switch cfg.AI.Provider {
	case types.ProviderGroq, "":
		return NewGroqCompleter(cfg), nil
	case types.ProviderAnthropic:
		return NewAnthropicCompleter(cfg), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.AI.Provider)
	}
}

// Generator builds the prompt and calls the Completer once per summary.
type Generator struct {
	Completer Completer
	Logger    *slog.Logger
}

// NewGenerator returns a Generator over c. A nil logger uses slog.Default.
func NewGenerator(c Completer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{Completer: c, Logger: logger}
}

// Generate returns the completion text for query and articles. On any
// failure it reports "Error with <provider> API: <err>" on rep and returns
// ErrorPlaceholder; it never returns an error.
func (g *Generator) Generate(ctx context.Context, query string, articles []types.Article, rep notice.Reporter) string {
	if rep == nil {
		rep = notice.Discard
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	prompt := BuildPrompt(query, articles)
	logger.Debug("requesting summary",
		"provider", g.Completer.Name(),
		"model", g.Completer.Model(),
		"articles", min(len(articles), MaxPromptArticles),
		"prompt_bytes", len(prompt),
	)

	text, err := g.Completer.Complete(ctx, prompt)
	if err != nil {
		logger.Debug("summary failed",
			"provider", g.Completer.Name(),
			"kind", httputil.Classify(err),
			"error", err,
		)
		rep.Report(notice.LevelError, fmt.Sprintf("Error with %s API: %v", g.Completer.Name(), err))
		return ErrorPlaceholder
	}
	return text
}
