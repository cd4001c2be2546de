// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/pkg/types"
)

// anthropicMaxTokens is required by the Messages API.
const anthropicMaxTokens = 1024

// AnthropicCompleter calls the Anthropic Messages API.
type AnthropicCompleter struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicCompleter builds a client from cfg. SDK retries are disabled.
func NewAnthropicCompleter(cfg *types.Config) *AnthropicCompleter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Credentials.CompletionAPIKey),
		option.WithHTTPClient(httputil.NewClient(cfg.AI.HTTPConfig)),
		option.WithMaxRetries(0),
	}
	if cfg.AI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.AI.BaseURL))
	}
	if ua := cfg.AI.UserAgent; ua != "" {
		opts = append(opts, option.WithHeader("User-Agent", ua))
	}
	return &AnthropicCompleter{
		client: anthropic.NewClient(opts...),
		model:  anthropic.ModelClaudeHaiku4_5,
	}
}

func (c *AnthropicCompleter) Name() string  { return "Anthropic" }
func (c *AnthropicCompleter) Model() string { return string(c.model) }

// Complete sends prompt as the sole user message and returns the text
// blocks of the reply concatenated.
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &httputil.StatusError{Service: "anthropic", StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no text content in anthropic response", httputil.ErrMalformed)
	}
	return sb.String(), nil
}
