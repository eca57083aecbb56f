package game

// Interval is one recorded mouth-open span, in milliseconds relative to the
// start of the play phase.
type Interval struct {
	StartMs int64
	EndMs   int64
}

// DurationMs returns how long the mouth was held open.
func (iv Interval) DurationMs() int64 {
	return iv.EndMs - iv.StartMs
}

// Recorder accumulates the player's press/release intervals during the play
// phase. Edges arrive from the keyboard layer; a press while already down and
// a release while already up are silently ignored, which guards against key
// repeat and stray release events without surfacing errors.
type Recorder struct {
	intervals []Interval
	down      bool
	downAt    int64
}

// PressDown records the opening edge. No-op if the mouth is already open.
func (r *Recorder) PressDown(elapsedMs int64) {
	if r.down {
		return
	}
	r.down = true
	r.downAt = elapsedMs
}

// PressUp records the closing edge and appends the completed interval.
// No-op if the mouth is not open.
func (r *Recorder) PressUp(elapsedMs int64) {
	if !r.down {
		return
	}
	r.down = false
	r.intervals = append(r.intervals, Interval{StartMs: r.downAt, EndMs: elapsedMs})
}

// Down reports whether the mouth is currently held open.
func (r *Recorder) Down() bool {
	return r.down
}

// Len returns the number of completed intervals so far.
func (r *Recorder) Len() int {
	return len(r.intervals)
}

// Reset clears all recorded intervals and forces the up state. Called at the
// start of every attempt and whenever the round leaves the play phase.
func (r *Recorder) Reset() {
	r.intervals = nil
	r.down = false
	r.downAt = 0
}

// Take returns the recorded intervals and clears the recorder. The round
// hands the result to the judge at the end of the play phase.
func (r *Recorder) Take() []Interval {
	out := r.intervals
	r.Reset()
	return out
}
