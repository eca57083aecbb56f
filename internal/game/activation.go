package game

// ActiveCharacters reports which characters are mid-action at the given
// elapsed time. A character is active iff some action of theirs satisfies
// elapsedMs in [StartMs, StartMs+DurationMs], both ends inclusive, so an
// action is already open at its onset instant and still open at its close
// instant. Any number of characters may be active at once.
func ActiveCharacters(actions []Action, elapsedMs int64) [CharacterCount]bool {
	var active [CharacterCount]bool
	for _, a := range actions {
		if a.Character < 0 || a.Character >= CharacterCount {
			continue
		}
		if elapsedMs >= a.StartMs && elapsedMs <= a.EndMs() {
			active[a.Character] = true
		}
	}
	return active
}
