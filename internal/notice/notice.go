// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notice is the side channel through which pipeline components
// surface user-visible messages (errors, warnings, progress) without
// propagating failures to their caller.
package notice

import (
	"context"
	"log/slog"
	"sync"
)

// Level classifies a notice for rendering.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one user-visible message.
type Notice struct {
	Level Level  `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Reporter accepts notices from components.
type Reporter interface {
	Report(level Level, text string)
}

// Discard is a Reporter that drops every notice.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Level, string) {}

// Collector records notices in order and mirrors each one to a structured
// logger. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
	logger  *slog.Logger
}

// NewCollector returns an empty Collector. A nil logger disables mirroring.
func NewCollector(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Report appends a notice and logs it at the matching slog level.
func (c *Collector) Report(level Level, text string) {
	c.mu.Lock()
	c.notices = append(c.notices, Notice{Level: level, Text: text})
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Log(context.Background(), slogLevel(level), text, "notice", string(level))
	}
}

// Notices returns a copy of the recorded notices.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Reset drops all recorded notices.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.notices = nil
	c.mu.Unlock()
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
