// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/pkg/types"
)

// newsAPIBase is the NewsAPI "everything" endpoint. Declared as a var so
// tests can substitute an httptest server.
var newsAPIBase = "https://newsapi.org/v2/everything"

// Fixed search parameters.
const (
	Language = "en"
	SortBy   = "relevancy"
)

// NewsAPIBackend queries NewsAPI.
type NewsAPIBackend struct {
	Client    *http.Client
	APIKey    string
	UserAgent string

	// Endpoint overrides newsAPIBase when set.
	Endpoint string
}

// NewNewsAPIBackend builds a backend from the news settings in cfg.
func NewNewsAPIBackend(cfg *types.Config) *NewsAPIBackend {
	return &NewsAPIBackend{
		Client:    httputil.NewClient(cfg.News.HTTPConfig),
		APIKey:    cfg.Credentials.NewsAPIKey,
		UserAgent: cfg.News.UserAgent,
		Endpoint:  cfg.News.Endpoint,
	}
}

// Name returns the backend identifier.
func (b *NewsAPIBackend) Name() string { return "newsapi" }

// Search issues one GET request and decodes the returned articles. A
// non-positive pageSize omits the parameter and takes the service default.
func (b *NewsAPIBackend) Search(ctx context.Context, query string, pageSize int) ([]types.Article, error) {
	params := url.Values{
		"q":        {query},
		"apiKey":   {b.APIKey},
		"language": {Language},
		"sortBy":   {SortBy},
	}
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	var nr newsAPIResponse
	if err := httputil.GetJSON(ctx, client, b.Name(), b.endpoint()+"?"+params.Encode(), b.UserAgent, &nr); err != nil {
		return nil, err
	}

	if strings.EqualFold(nr.Status, "error") {
		return nil, &httputil.StatusError{
			Service:    b.Name(),
			StatusCode: http.StatusOK,
			Code:       nr.Code,
			Message:    nr.Message,
		}
	}

	articles := make([]types.Article, 0, len(nr.Articles))
	for _, a := range nr.Articles {
		articles = append(articles, a.toArticle())
	}
	return articles, nil
}

// --- NewsAPI response types ---

type newsAPIResponse struct {
	Status       string           `json:"status"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	PublishedAt *string `json:"publishedAt"`
}

func (a newsAPIArticle) toArticle() types.Article {
	art := types.Article{
		Title:       deref(a.Title),
		Description: deref(a.Description),
		SourceName:  deref(a.Source.Name),
		URL:         deref(a.URL),
		Author:      deref(a.Author),
	}
	if ts := deref(a.PublishedAt); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			art.PublishedAt = t
		}
	}
	return art
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (b *NewsAPIBackend) endpoint() string {
	if b.Endpoint != "" {
		return b.Endpoint
	}
	return newsAPIBase
}
