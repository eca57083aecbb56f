package game

import "sort"

// Timing tolerances, in milliseconds. The level catalog was authored and
// tuned against these exact values; changing them changes the difficulty
// curve of every level, so they are constants, not configuration.
const (
	// OnsetToleranceMs is how far a recorded opening may drift from the
	// expected onset in either direction.
	OnsetToleranceMs = 600

	// DurationToleranceMs is how far a recorded hold may differ from the
	// expected duration in either direction.
	DurationToleranceMs = 800

	// StuckKeyGraceMs is added to the longest expected duration; any single
	// hold beyond that is treated as a never-released key.
	StuckKeyGraceMs = 1000
)

// Failure reasons shown to the player. The first applicable failure wins, so
// the check order below decides which message appears when several faults
// co-occur.
const (
	ReasonTooFew   = "too few mouth openings"
	ReasonTooMany  = "too many mouth openings"
	ReasonTiming   = "opened at the wrong time"
	ReasonDuration = "held open for the wrong duration"
	ReasonStuck    = "never let go of the key"
	ReasonSilence  = "should have stayed silent"
)

// Verdict is the judge's outcome for one attempt. Reason is empty on a pass.
type Verdict struct {
	Passed bool
	Reason string
}

func fail(reason string) Verdict {
	return Verdict{Reason: reason}
}

// Judge compares the recorded intervals against the expected actions for the
// player's character. Both sequences are compared in onset order, not arrival
// order. Checks run in a fixed order and the first failure short-circuits:
//
//  1. silence: nothing expected but something recorded;
//  2. count: the attempt has too few or too many openings;
//  3. pairwise: per index, onset within OnsetToleranceMs, then duration
//     within DurationToleranceMs;
//  4. stuck key: any hold longer than the longest expected duration plus
//     StuckKeyGraceMs.
func Judge(expected []Action, recorded []Interval) Verdict {
	if len(expected) == 0 {
		if len(recorded) > 0 {
			return fail(ReasonSilence)
		}
		return Verdict{Passed: true}
	}

	exp := make([]Action, len(expected))
	copy(exp, expected)
	sort.Slice(exp, func(i, j int) bool { return exp[i].StartMs < exp[j].StartMs })

	rec := make([]Interval, len(recorded))
	copy(rec, recorded)
	sort.Slice(rec, func(i, j int) bool { return rec[i].StartMs < rec[j].StartMs })

	if len(rec) < len(exp) {
		return fail(ReasonTooFew)
	}
	if len(rec) > len(exp) {
		return fail(ReasonTooMany)
	}

	for i := range exp {
		if abs64(rec[i].StartMs-exp[i].StartMs) > OnsetToleranceMs {
			return fail(ReasonTiming)
		}
		if abs64(rec[i].DurationMs()-exp[i].DurationMs) > DurationToleranceMs {
			return fail(ReasonDuration)
		}
	}

	var longest int64
	for _, a := range exp {
		if a.DurationMs > longest {
			longest = a.DurationMs
		}
	}
	for _, iv := range rec {
		if iv.DurationMs() > longest+StuckKeyGraceMs {
			return fail(ReasonStuck)
		}
	}

	return Verdict{Passed: true}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
