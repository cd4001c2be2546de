// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsInOrder(t *testing.T) {
	c := NewCollector(nil)
	c.Report(LevelSuccess, "Found 3 articles")
	c.Report(LevelError, "Error with groq API: boom")

	got := c.Notices()
	require.Len(t, got, 2)
	assert.Equal(t, Notice{Level: LevelSuccess, Text: "Found 3 articles"}, got[0])
	assert.Equal(t, Notice{Level: LevelError, Text: "Error with groq API: boom"}, got[1])
}

func TestCollectorNoticesReturnsCopy(t *testing.T) {
	c := NewCollector(nil)
	c.Report(LevelInfo, "one")

	got := c.Notices()
	got[0].Text = "mutated"

	assert.Equal(t, "one", c.Notices()[0].Text)
}

func TestCollectorReset(t *testing.T) {
	c := NewCollector(nil)
	c.Report(LevelWarning, "careful")
	c.Reset()
	assert.Empty(t, c.Notices())
}

func TestCollectorMirrorsToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCollector(logger)
	c.Report(LevelError, "Error fetching news: timeout")
	c.Report(LevelWarning, "No articles found")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "Error fetching news: timeout")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "notice=warning")
}

func TestCollectorConcurrentReports(t *testing.T) {
	c := NewCollector(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Report(LevelInfo, "tick")
		}()
	}
	wg.Wait()
	assert.Len(t, c.Notices(), 50)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Report(LevelError, "ignored") })
}
