package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mkarev/mimic/internal/game"
)

const synthSampleRate = beep.SampleRate(44100)

// voiceFreqs assigns each character a pitch, low to high across the cast,
// so the ear can track who is singing without looking.
var voiceFreqs = [game.CharacterCount]float64{261.63, 293.66, 329.63, 392.00, 440.00}

// tone is a gated sine oscillator. It streams until released, with a short
// attack ramp to avoid clicks on the opening edge.
type tone struct {
	freq  float64
	phase float64
	pos   int
	gate  sync.Once
	done  chan struct{}
}

func newTone(freq float64) *tone {
	return &tone{freq: freq, done: make(chan struct{})}
}

func (t *tone) release() {
	t.gate.Do(func() { close(t.done) })
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	select {
	case <-t.done:
		return 0, false
	default:
	}
	attack := synthSampleRate.N(20 * time.Millisecond)
	for i := range samples {
		val := 0.4 * math.Sin(2*math.Pi*t.phase)
		if t.pos < attack {
			val *= float64(t.pos) / float64(attack)
		}
		samples[i][0] = val
		samples[i][1] = val
		t.phase += t.freq / float64(synthSampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// SynthSink renders character voices as synthesized tones through the
// system speaker. A nil SynthSink is valid and silent, which covers
// headless sessions and hosts without an audio device.
type SynthSink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	playing *tone
}

// NewSynthSink initializes the speaker and returns a live sink. On any
// speaker failure it returns nil and the error; the nil sink still
// satisfies Sink, so callers can keep the error for logging and play on
// in silence.
func NewSynthSink() (*SynthSink, error) {
	if err := speaker.Init(synthSampleRate, synthSampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &SynthSink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the character's tone, replacing any current one.
func (s *SynthSink) Play(character int) {
	if s == nil || character < 0 || character >= game.CharacterCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != nil {
		s.playing.release()
	}
	t := newTone(voiceFreqs[character])
	s.playing = t
	speaker.Lock()
	s.mixer.Add(t)
	speaker.Unlock()
}

// Stop silences the current tone, if any.
func (s *SynthSink) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != nil {
		s.playing.release()
		s.playing = nil
	}
}
