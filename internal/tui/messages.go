package tui

import "github.com/pdiddy/news-research/internal/pipeline"

// fetchedMsg reports that the retrieval step finished.
type fetchedMsg struct {
	state pipeline.State
}

// summarizedMsg reports that the summary step finished.
type summarizedMsg struct {
	state pipeline.State
}
