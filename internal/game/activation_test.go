package game

import "testing"

func TestActiveCharactersWindow(t *testing.T) {
	actions := []Action{
		{Character: 2, StartMs: 1000, DurationMs: 800},
	}

	tests := []struct {
		name    string
		elapsed int64
		active  bool
	}{
		{"before onset", 999, false},
		{"at onset (inclusive)", 1000, true},
		{"mid action", 1400, true},
		{"at close (inclusive)", 1800, true},
		{"after close", 1801, false},
		{"zero elapsed", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ActiveCharacters(actions, tc.elapsed)
			if got[2] != tc.active {
				t.Errorf("ActiveCharacters(%d)[2] = %v, expected %v", tc.elapsed, got[2], tc.active)
			}
			for i := 0; i < CharacterCount; i++ {
				if i != 2 && got[i] {
					t.Errorf("character %d should never be active", i)
				}
			}
		})
	}
}

func TestActiveCharactersSimultaneous(t *testing.T) {
	// Full cast open at once, as the high levels require.
	var actions []Action
	for i := 0; i < CharacterCount; i++ {
		actions = append(actions, Action{Character: i, StartMs: 800, DurationMs: 800})
	}

	got := ActiveCharacters(actions, 1200)
	for i := 0; i < CharacterCount; i++ {
		if !got[i] {
			t.Errorf("character %d should be active", i)
		}
	}
}

func TestActiveCharactersOverlap(t *testing.T) {
	actions := []Action{
		{Character: 1, StartMs: 400, DurationMs: 800},
		{Character: 3, StartMs: 700, DurationMs: 600},
	}

	got := ActiveCharacters(actions, 750)
	if !got[1] || !got[3] {
		t.Errorf("both overlapping characters should be active, got %v", got)
	}
}

func TestActiveCharactersIdempotent(t *testing.T) {
	actions := []Action{
		{Character: 0, StartMs: 200, DurationMs: 300},
		{Character: 4, StartMs: 250, DurationMs: 500},
	}

	first := ActiveCharacters(actions, 400)
	second := ActiveCharacters(actions, 400)
	if first != second {
		t.Errorf("repeated evaluation diverged: %v vs %v", first, second)
	}
}

func TestActiveCharactersIgnoresOutOfRangeIndex(t *testing.T) {
	actions := []Action{
		{Character: 9, StartMs: 0, DurationMs: 1000},
		{Character: -1, StartMs: 0, DurationMs: 1000},
	}

	got := ActiveCharacters(actions, 500)
	if got != ([CharacterCount]bool{}) {
		t.Errorf("out-of-range characters should be ignored, got %v", got)
	}
}
