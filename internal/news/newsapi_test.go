// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/news-research/internal/httputil"
	"github.com/pdiddy/news-research/pkg/types"
)

const newsAPIFixture = `{
  "status": "ok",
  "totalResults": 3,
  "articles": [
    {
      "source": {"id": "reuters", "name": "Reuters"},
      "author": "Jane Doe",
      "title": "Tesla deliveries beat estimates",
      "description": "Tesla delivered more vehicles than expected in Q3.",
      "url": "https://example.com/tesla-q3",
      "publishedAt": "2026-10-02T14:30:00Z",
      "content": "..."
    },
    {
      "source": {"id": null, "name": "Bloomberg"},
      "author": null,
      "title": "EV price war deepens",
      "description": null,
      "url": "https://example.com/ev-price-war",
      "publishedAt": "not a date"
    },
    {
      "source": {"id": null, "name": null},
      "title": null,
      "description": "Analysts weigh in.",
      "url": null
    }
  ]
}`

// newsServer starts an httptest server that records the last query and
// points newsAPIBase at it for the duration of the test.
func newsServer(t *testing.T, status int, body string) *url.Values {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	orig := newsAPIBase
	newsAPIBase = srv.URL
	t.Cleanup(func() { newsAPIBase = orig })
	return &got
}

// --- NewsAPIBackend ---

func TestNewsAPISearchParams(t *testing.T) {
	got := newsServer(t, http.StatusOK, `{"status":"ok","articles":[]}`)

	b := &NewsAPIBackend{APIKey: "test-key"}
	_, err := b.Search(context.Background(), "Tesla stock performance", 5)
	require.NoError(t, err)

	assert.Equal(t, "Tesla stock performance", got.Get("q"))
	assert.Equal(t, "test-key", got.Get("apiKey"))
	assert.Equal(t, "en", got.Get("language"))
	assert.Equal(t, "relevancy", got.Get("sortBy"))
	assert.Equal(t, "5", got.Get("pageSize"))
}

func TestNewsAPISearchParsesArticles(t *testing.T) {
	newsServer(t, http.StatusOK, newsAPIFixture)

	b := &NewsAPIBackend{}
	articles, err := b.Search(context.Background(), "Tesla", 10)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	first := articles[0]
	assert.Equal(t, "Tesla deliveries beat estimates", first.Title)
	assert.Equal(t, "Reuters", first.SourceName)
	assert.Equal(t, "Jane Doe", first.Author)
	assert.Equal(t, "https://example.com/tesla-q3", first.URL)
	assert.Equal(t, time.Date(2026, 10, 2, 14, 30, 0, 0, time.UTC), first.PublishedAt)

	second := articles[1]
	assert.Empty(t, second.Description)
	assert.Equal(t, types.PlaceholderDescription, second.DisplayDescription())
	assert.True(t, second.PublishedAt.IsZero(), "unparseable dates are dropped")

	third := articles[2]
	assert.Equal(t, types.PlaceholderTitle, third.DisplayTitle())
	assert.Equal(t, types.PlaceholderSource, third.DisplaySource())
	assert.Equal(t, "Analysts weigh in.", third.DisplayDescription())
	assert.False(t, third.HasLink())
}

func TestNewsAPISearchEndpointOverride(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/custom", r.URL.Path)
		fmt.Fprint(w, `{"status":"ok","articles":[{"title":"x"}]}`)
	}))
	defer srv.Close()

	b := &NewsAPIBackend{Endpoint: srv.URL + "/custom"}
	articles, err := b.Search(context.Background(), "q", 3)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, 1, hits)
}

func TestNewsAPISearchErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind httputil.ErrorKind
		wantMsg  string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid or incorrect."}`,
			wantKind: httputil.KindUpstream,
			wantMsg:  "apiKeyInvalid",
		},
		{
			name:     "error payload on 200",
			status:   http.StatusOK,
			body:     `{"status":"error","code":"parameterInvalid","message":"bad"}`,
			wantKind: httputil.KindUpstream,
			wantMsg:  "parameterInvalid",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `oops`,
			wantKind: httputil.KindUpstream,
			wantMsg:  "HTTP 500",
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			body:     `{"status":"ok","articles":`,
			wantKind: httputil.KindMalformed,
			wantMsg:  "malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newsServer(t, tt.status, tt.body)

			b := &NewsAPIBackend{}
			articles, err := b.Search(context.Background(), "Tesla", 5)
			require.Error(t, err)
			assert.Nil(t, articles)
			assert.Equal(t, tt.wantKind, httputil.Classify(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewsAPISearchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := &types.Config{News: types.NewsConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 50 * time.Millisecond},
		Endpoint:   srv.URL,
	}}
	b := NewNewsAPIBackend(cfg)

	_, err := b.Search(context.Background(), "Tesla", 5)
	require.Error(t, err)
	assert.Equal(t, httputil.KindTransport, httputil.Classify(err))
	assert.True(t, httputil.IsTimeout(err))
}

func TestNewNewsAPIBackend(t *testing.T) {
	cfg := &types.Config{
		Credentials: types.Credentials{NewsAPIKey: "k"},
		News: types.NewsConfig{
			HTTPConfig: types.HTTPConfig{Timeout: 3 * time.Second, UserAgent: "ua"},
		},
	}
	b := NewNewsAPIBackend(cfg)
	assert.Equal(t, "k", b.APIKey)
	assert.Equal(t, "ua", b.UserAgent)
	assert.Equal(t, 3*time.Second, b.Client.Timeout)
	assert.Equal(t, "newsapi", b.Name())
}
