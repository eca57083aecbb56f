package game

// Event is an input to the round state machine. All timestamps are absolute
// wall-clock milliseconds; the round converts them to phase-relative elapsed
// times itself, so tests can drive a whole playthrough with synthetic clocks.
type Event interface {
	roundEvent()
}

// StartEvent begins the first demo of a playthrough. Valid in waiting.
type StartEvent struct {
	NowMs int64
}

// TickEvent drives per-frame activation updates. Valid only in the demo and
// play phases; the round ignores it everywhere else, so a tick scheduled
// before a phase change can never mutate state after it.
type TickEvent struct {
	NowMs int64
}

// CountdownTickEvent advances the 3-2-1 countdown by one step. Valid in the
// countdown phase; the final step enters the play phase.
type CountdownTickEvent struct {
	NowMs int64
}

// RetryEvent replays the current level after a failed attempt. Valid in the
// result phase when the attempt failed.
type RetryEvent struct {
	NowMs int64
}

// NextEvent starts the demo of the next level after a passed attempt. Valid
// in the result phase when the attempt passed.
type NextEvent struct {
	NowMs int64
}

// ResetEvent starts a fresh playthrough. Valid in the game-over phase.
type ResetEvent struct{}

// PressDownEvent is the keyboard's opening edge. Valid only while playing.
type PressDownEvent struct {
	NowMs int64
}

// PressUpEvent is the keyboard's closing edge. Valid only while playing.
type PressUpEvent struct {
	NowMs int64
}

func (StartEvent) roundEvent() {}
func (TickEvent) roundEvent() {}
func (CountdownTickEvent) roundEvent() {}
func (RetryEvent) roundEvent() {}
func (NextEvent) roundEvent() {}
func (ResetEvent) roundEvent() {}
func (PressDownEvent) roundEvent() {}
func (PressUpEvent) roundEvent() {}

// Effect is a side effect requested by a transition. The round never touches
// audio, storage, or the terminal itself; it returns effects and the platform
// layer applies them, which keeps transition ordering testable.
type Effect interface {
	roundEffect()
}

// PhaseChangedEffect reports a phase transition.
type PhaseChangedEffect struct {
	From Phase
	To   Phase
}

// VoiceOnEffect asks the audio layer to start a character's voice.
type VoiceOnEffect struct {
	Character int
}

// VoiceOffEffect asks the audio layer to stop a character's voice.
type VoiceOffEffect struct {
	Character int
}

// JudgedEffect reports the verdict for a finished attempt.
type JudgedEffect struct {
	LevelIndex int
	Verdict    Verdict
}

// RunEndedEffect reports the final outcome of a playthrough, emitted exactly
// once on entering the game-over phase.
type RunEndedEffect struct {
	Score         int
	Rank          string
	LevelsCleared int
}

func (PhaseChangedEffect) roundEffect() {}
func (VoiceOnEffect) roundEffect() {}
func (VoiceOffEffect) roundEffect() {}
func (JudgedEffect) roundEffect() {}
func (RunEndedEffect) roundEffect() {}
