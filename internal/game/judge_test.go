package game

import "testing"

func TestJudgeCountMismatch(t *testing.T) {
	expected := []Action{{Character: 2, StartMs: 1000, DurationMs: 800}}

	v := Judge(expected, nil)
	if v.Passed {
		t.Fatal("missing recording should fail")
	}
	if v.Reason != ReasonTooFew {
		t.Errorf("reason = %q, expected %q", v.Reason, ReasonTooFew)
	}

	v = Judge(expected, []Interval{
		{StartMs: 1000, EndMs: 1800},
		{StartMs: 2500, EndMs: 2900},
	})
	if v.Passed || v.Reason != ReasonTooMany {
		t.Errorf("extra recording: verdict = %+v, expected %q", v, ReasonTooMany)
	}
}

func TestJudgePassWithinTolerance(t *testing.T) {
	expected := []Action{{Character: 2, StartMs: 1000, DurationMs: 800}}
	// Onset off by 400ms, duration exact.
	recorded := []Interval{{StartMs: 1400, EndMs: 2200}}

	v := Judge(expected, recorded)
	if !v.Passed {
		t.Errorf("verdict = %+v, expected pass", v)
	}
	if v.Reason != "" {
		t.Errorf("pass should carry no reason, got %q", v.Reason)
	}
}

func TestJudgeOnsetBoundary(t *testing.T) {
	expected := []Action{{Character: 2, StartMs: 1000, DurationMs: 800}}

	// Exactly at tolerance: pass.
	v := Judge(expected, []Interval{{StartMs: 1600, EndMs: 2400}})
	if !v.Passed {
		t.Errorf("onset diff of exactly %dms should pass, got %+v", OnsetToleranceMs, v)
	}

	// One past tolerance: fail with the timing reason.
	v = Judge(expected, []Interval{{StartMs: 1601, EndMs: 2401}})
	if v.Passed || v.Reason != ReasonTiming {
		t.Errorf("onset diff of %dms: verdict = %+v, expected %q", OnsetToleranceMs+1, v, ReasonTiming)
	}
}

func TestJudgeDurationBoundary(t *testing.T) {
	expected := []Action{{Character: 0, StartMs: 1000, DurationMs: 500}}

	v := Judge(expected, []Interval{{StartMs: 1000, EndMs: 1000 + 500 + DurationToleranceMs}})
	if !v.Passed {
		t.Errorf("duration diff of exactly %dms should pass, got %+v", DurationToleranceMs, v)
	}

	v = Judge(expected, []Interval{{StartMs: 1000, EndMs: 1000 + 500 + DurationToleranceMs + 1}})
	if v.Passed || v.Reason != ReasonDuration {
		t.Errorf("duration past tolerance: verdict = %+v, expected %q", v, ReasonDuration)
	}
}

func TestJudgeSilenceViolation(t *testing.T) {
	// The player has no actions this level but opened anyway.
	v := Judge(nil, []Interval{{StartMs: 500, EndMs: 900}})
	if v.Passed || v.Reason != ReasonSilence {
		t.Errorf("verdict = %+v, expected %q", v, ReasonSilence)
	}

	// Silence kept: pass.
	v = Judge(nil, nil)
	if !v.Passed {
		t.Errorf("verdict = %+v, expected pass", v)
	}
}

func TestJudgeOverHeldKey(t *testing.T) {
	expected := []Action{{Character: 1, StartMs: 2000, DurationMs: 600}}
	// Held nearly two seconds past the expected hold; the pairwise duration
	// check catches it before the stuck-key bound is consulted.
	recorded := []Interval{{StartMs: 2000, EndMs: 2000 + 600 + StuckKeyGraceMs + 1}}

	v := Judge(expected, recorded)
	if v.Passed || v.Reason != ReasonDuration {
		t.Errorf("verdict = %+v, expected %q", v, ReasonDuration)
	}
}

func TestJudgeHoldAtPairwiseEdge(t *testing.T) {
	// Holds at the exact pairwise edge stay under the stuck-key bound too
	// (the grace exceeds the duration tolerance), so the attempt passes.
	expected := []Action{
		{Character: 1, StartMs: 500, DurationMs: 200},
		{Character: 1, StartMs: 4000, DurationMs: 200},
	}
	recorded := []Interval{
		{StartMs: 500, EndMs: 500 + 200 + DurationToleranceMs},
		{StartMs: 4000, EndMs: 4000 + 200},
	}

	v := Judge(expected, recorded)
	if !v.Passed {
		t.Fatalf("edge-legal attempt should pass, got %+v", v)
	}
}

func TestJudgeComparesInOnsetOrder(t *testing.T) {
	expected := []Action{
		{Character: 3, StartMs: 2200, DurationMs: 700},
		{Character: 3, StartMs: 800, DurationMs: 600},
	}
	// Arrival order reversed relative to time; both intervals are exact
	// matches once sorted.
	recorded := []Interval{
		{StartMs: 2200, EndMs: 2900},
		{StartMs: 800, EndMs: 1400},
	}

	v := Judge(expected, recorded)
	if !v.Passed {
		t.Errorf("order-insensitive pairing should pass, got %+v", v)
	}
}

func TestJudgeFirstFailureWins(t *testing.T) {
	expected := []Action{
		{Character: 0, StartMs: 1000, DurationMs: 400},
		{Character: 0, StartMs: 3000, DurationMs: 400},
	}
	// Index 0 has a timing fault, index 1 a duration fault; timing at the
	// earlier index must be the reported reason.
	recorded := []Interval{
		{StartMs: 1700, EndMs: 2100},
		{StartMs: 3000, EndMs: 4500},
	}

	v := Judge(expected, recorded)
	if v.Passed || v.Reason != ReasonTiming {
		t.Errorf("verdict = %+v, expected first failing index reason %q", v, ReasonTiming)
	}
}
