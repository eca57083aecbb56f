// Package game implements the mimicry round: a catalog of timed mouth-open
// actions, per-tick activation, input recording, and performance judging.
// It contains pure logic with no external dependencies beyond the YAML
// catalog parser, so every rule is testable without a terminal.
package game

import "sort"

// CharacterCount is the size of the cast. Character indices are always
// in [0, CharacterCount).
const CharacterCount = 5

// Action schedules one mouth-open event for a single character.
type Action struct {
	Character  int   `yaml:"character"`
	StartMs    int64 `yaml:"start_ms"`
	DurationMs int64 `yaml:"duration_ms"`
}

// EndMs returns the instant the mouth closes again.
func (a Action) EndMs() int64 {
	return a.StartMs + a.DurationMs
}

// Level is one stage of the game: a set of actions plus the stage length.
// Actions are an unordered set in storage; consumers that need time order
// sort by onset themselves.
type Level struct {
	ID      int      `yaml:"id"`
	TotalMs int64    `yaml:"total_ms"`
	Actions []Action `yaml:"actions"`
}

// ActionsFor returns the actions assigned to one character, sorted by onset.
func (l Level) ActionsFor(character int) []Action {
	var out []Action
	for _, a := range l.Actions {
		if a.Character == character {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartMs < out[j].StartMs
	})
	return out
}
