// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/pkg/types"
)

// Groq's OpenAI-compatible endpoint and the fixed model.
const (
	GroqBaseURL = "https://api.groq.com/openai/v1/"
	GroqModel   = "llama3-8b-8192"
)

// GroqCompleter calls Groq's chat completions API through the OpenAI SDK.
type GroqCompleter struct {
	client openai.Client
	model  string
}

// NewGroqCompleter builds a client from cfg. SDK retries are disabled and
// a configured user agent replaces the SDK's own.
func NewGroqCompleter(cfg *types.Config) *GroqCompleter {
	base := cfg.AI.BaseURL
	if base == "" {
		base = GroqBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Credentials.CompletionAPIKey),
		option.WithBaseURL(base),
		option.WithHTTPClient(httputil.NewClient(cfg.AI.HTTPConfig)),
		option.WithMaxRetries(0),
	}
	if ua := cfg.AI.UserAgent; ua != "" {
		opts = append(opts, option.WithHeader("User-Agent", ua))
	}
	return &GroqCompleter{client: openai.NewClient(opts...), model: GroqModel}
}

func (c *GroqCompleter) Name() string  { return "Groq" }
func (c *GroqCompleter) Model() string { return c.model }

// Complete sends prompt as the sole user message and returns the first
// choice's content verbatim.
func (c *GroqCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &httputil.StatusError{Service: "groq", StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in groq response", httputil.ErrMalformed)
	}
	return resp.Choices[0].Message.Content, nil
}
