// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "fmt"

// State is the position of a session in its interaction.
type State int

const (
	Idle State = iota
	Submitted
	Fetching
	Summarizing
	Rendered
	NoResults
)

var stateNames = [...]string{
	Idle:        "idle",
	Submitted:   "submitted",
	Fetching:    "fetching",
	Summarizing: "summarizing",
	Rendered:    "rendered",
	NoResults:   "no_results",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText renders the state name in JSON and YAML output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Busy reports whether an outbound call is in flight.
func (s State) Busy() bool {
	return s == Fetching || s == Summarizing
}

// Terminal reports whether the interaction has finished.
func (s State) Terminal() bool {
	return s == Rendered || s == NoResults
}
