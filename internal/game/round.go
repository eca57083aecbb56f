package game

import "math/rand"

// Phase is the round's position in the demo/countdown/play cycle.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseDemo
	PhaseCountdown
	PhasePlaying
	PhaseResult
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseDemo:
		return "demo"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseResult:
		return "result"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

const (
	// StartingLives is the number of attempts before game over.
	StartingLives = 3

	// LevelReward is the score granted per cleared level.
	LevelReward = 10

	// CountdownSteps is the number of one-second countdown steps between the
	// demo and the play phase.
	CountdownSteps = 3
)

// PlayerUnassigned is the sentinel seat before the first demo of a
// playthrough randomizes it.
const PlayerUnassigned = -1

// Round is the state machine for one game session. It owns all mutable round
// state; every other component either feeds it events or receives read-only
// snapshots. Transitions happen exclusively through Dispatch, which returns
// the side effects the platform layer should apply.
type Round struct {
	catalog *Catalog
	rng     *rand.Rand

	phase      Phase
	level      int
	lives      int
	score      int
	player     int
	demoStart  int64
	playStart  int64
	countdown  int
	failReason string

	demoOpen [CharacterCount]bool
	playOpen [CharacterCount]bool

	recorder Recorder
}

// NewRound creates a round in the waiting phase. The seed drives the player
// seat draw; equal seeds reproduce identical seat assignments.
func NewRound(catalog *Catalog, seed int64) *Round {
	return &Round{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
		phase:   PhaseWaiting,
		lives:   StartingLives,
		player:  PlayerUnassigned,
	}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// LevelIndex returns the 0-based index of the current level.
func (r *Round) LevelIndex() int { return r.level }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// Score returns the accumulated score.
func (r *Round) Score() int { return r.score }

// PlayerCharacter returns the player's seat, or PlayerUnassigned before the
// first demo.
func (r *Round) PlayerCharacter() int { return r.player }

// Countdown returns the remaining countdown steps while in that phase.
func (r *Round) Countdown() int { return r.countdown }

// FailReason returns the last verdict's reason, empty after a pass.
func (r *Round) FailReason() string { return r.failReason }

// DemoOpen returns the demo track's current open/closed state per character.
func (r *Round) DemoOpen() [CharacterCount]bool { return r.demoOpen }

// PlayOpen returns the play track's current open/closed state per character.
// The player's own entry follows live input; the rest follow the level.
func (r *Round) PlayOpen() [CharacterCount]bool { return r.playOpen }

// MouthDown reports whether the player currently holds the mouth open.
func (r *Round) MouthDown() bool { return r.recorder.Down() }

// CurrentLevel returns the current level definition.
func (r *Round) CurrentLevel() (Level, error) {
	return r.catalog.Level(r.level)
}

// LevelCount returns the catalog size.
func (r *Round) LevelCount() int { return r.catalog.Count() }

// Dispatch applies one event. Events that are invalid for the current phase
// are ignored and return no effects.
func (r *Round) Dispatch(ev Event) []Effect {
	switch ev := ev.(type) {
	case StartEvent:
		return r.start(ev.NowMs)
	case TickEvent:
		return r.tick(ev.NowMs)
	case CountdownTickEvent:
		return r.countdownTick(ev.NowMs)
	case RetryEvent:
		return r.retry(ev.NowMs)
	case NextEvent:
		return r.next(ev.NowMs)
	case ResetEvent:
		return r.reset()
	case PressDownEvent:
		if r.phase == PhasePlaying {
			r.recorder.PressDown(ev.NowMs - r.playStart)
		}
		return nil
	case PressUpEvent:
		if r.phase == PhasePlaying {
			r.recorder.PressUp(ev.NowMs - r.playStart)
		}
		return nil
	default:
		return nil
	}
}

func (r *Round) start(nowMs int64) []Effect {
	if r.phase != PhaseWaiting {
		return nil
	}
	if r.level >= r.catalog.Count() {
		return r.gameOver(nil)
	}
	// The seat is drawn once per playthrough, on the very first demo, and
	// held fixed across retries and level advances.
	if r.level == 0 && r.player == PlayerUnassigned {
		r.player = r.rng.Intn(CharacterCount)
	}
	return r.beginDemo(nowMs)
}

func (r *Round) beginDemo(nowMs int64) []Effect {
	effects := r.closeAllVoices()
	from := r.phase
	r.phase = PhaseDemo
	r.demoStart = nowMs
	r.failReason = ""
	r.recorder.Reset()
	r.demoOpen = [CharacterCount]bool{}
	r.playOpen = [CharacterCount]bool{}
	return append(effects, PhaseChangedEffect{From: from, To: PhaseDemo})
}

func (r *Round) tick(nowMs int64) []Effect {
	switch r.phase {
	case PhaseDemo:
		return r.tickDemo(nowMs)
	case PhasePlaying:
		return r.tickPlaying(nowMs)
	default:
		return nil
	}
}

func (r *Round) tickDemo(nowMs int64) []Effect {
	lvl, err := r.catalog.Level(r.level)
	if err != nil {
		return r.gameOver(nil)
	}
	elapsed := nowMs - r.demoStart
	if elapsed >= lvl.TotalMs {
		effects := r.closeAllVoices()
		r.phase = PhaseCountdown
		r.countdown = CountdownSteps
		return append(effects, PhaseChangedEffect{From: PhaseDemo, To: PhaseCountdown})
	}
	next := ActiveCharacters(lvl.Actions, elapsed)
	return r.applyOpenState(&r.demoOpen, next)
}

func (r *Round) tickPlaying(nowMs int64) []Effect {
	lvl, err := r.catalog.Level(r.level)
	if err != nil {
		return r.gameOver(nil)
	}
	elapsed := nowMs - r.playStart
	if elapsed >= lvl.TotalMs {
		return r.finishAttempt(lvl)
	}
	next := ActiveCharacters(lvl.Actions, elapsed)
	// The player's character follows live input, not the score.
	if r.player >= 0 {
		next[r.player] = r.recorder.Down()
	}
	return r.applyOpenState(&r.playOpen, next)
}

func (r *Round) countdownTick(nowMs int64) []Effect {
	if r.phase != PhaseCountdown {
		return nil
	}
	r.countdown--
	if r.countdown > 0 {
		return nil
	}
	r.countdown = 0
	r.phase = PhasePlaying
	r.playStart = nowMs
	r.recorder.Reset()
	r.playOpen = [CharacterCount]bool{}
	return []Effect{PhaseChangedEffect{From: PhaseCountdown, To: PhasePlaying}}
}

func (r *Round) finishAttempt(lvl Level) []Effect {
	effects := r.closeAllVoices()
	verdict := Judge(lvl.ActionsFor(r.player), r.recorder.Take())
	effects = append(effects, JudgedEffect{LevelIndex: r.level, Verdict: verdict})

	if verdict.Passed {
		r.score += LevelReward
		r.level++
		r.failReason = ""
		if r.level >= r.catalog.Count() {
			return r.gameOver(effects)
		}
	} else {
		r.lives--
		r.failReason = verdict.Reason
		if r.lives <= 0 {
			return r.gameOver(effects)
		}
	}

	from := r.phase
	r.phase = PhaseResult
	return append(effects, PhaseChangedEffect{From: from, To: PhaseResult})
}

func (r *Round) gameOver(effects []Effect) []Effect {
	from := r.phase
	r.phase = PhaseGameOver
	effects = append(effects, PhaseChangedEffect{From: from, To: PhaseGameOver})
	return append(effects, RunEndedEffect{
		Score:         r.score,
		Rank:          RankForScore(r.score),
		LevelsCleared: r.score / LevelReward,
	})
}

func (r *Round) retry(nowMs int64) []Effect {
	if r.phase != PhaseResult || r.failReason == "" {
		return nil
	}
	return r.beginDemo(nowMs)
}

func (r *Round) next(nowMs int64) []Effect {
	if r.phase != PhaseResult || r.failReason != "" {
		return nil
	}
	return r.beginDemo(nowMs)
}

func (r *Round) reset() []Effect {
	if r.phase != PhaseGameOver {
		return nil
	}
	effects := r.closeAllVoices()
	r.phase = PhaseWaiting
	r.level = 0
	r.lives = StartingLives
	r.score = 0
	r.player = PlayerUnassigned
	r.demoStart = 0
	r.playStart = 0
	r.countdown = 0
	r.failReason = ""
	r.recorder.Reset()
	return append(effects, PhaseChangedEffect{From: PhaseGameOver, To: PhaseWaiting})
}

// applyOpenState diffs the next open set against the current one and emits
// voice edge effects for every change.
func (r *Round) applyOpenState(current *[CharacterCount]bool, next [CharacterCount]bool) []Effect {
	var effects []Effect
	for i := 0; i < CharacterCount; i++ {
		if next[i] == current[i] {
			continue
		}
		if next[i] {
			effects = append(effects, VoiceOnEffect{Character: i})
		} else {
			effects = append(effects, VoiceOffEffect{Character: i})
		}
	}
	*current = next
	return effects
}

// closeAllVoices clears both tracks, emitting off edges for anything open.
func (r *Round) closeAllVoices() []Effect {
	var effects []Effect
	for i := 0; i < CharacterCount; i++ {
		if r.demoOpen[i] || r.playOpen[i] {
			effects = append(effects, VoiceOffEffect{Character: i})
		}
		r.demoOpen[i] = false
		r.playOpen[i] = false
	}
	return effects
}
