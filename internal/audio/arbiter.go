// Package audio turns voice on/off edges from the round into sound. The
// Arbiter owns the single-channel policy; the Sink behind it does the actual
// playback, so the policy is testable without a speaker.
package audio

// Sink plays at most one character voice at a time. Play replaces whatever
// is currently sounding.
type Sink interface {
	Play(character int)
	Stop()
}

const noVoice = -1

// Arbiter serializes concurrent voice requests onto a single channel. Mouths
// may overlap on screen, but the speaker plays one voice: the newest request
// wins, and a release only silences the channel if that character still
// owns it.
type Arbiter struct {
	sink    Sink
	current int
}

// NewArbiter creates an arbiter over the given sink.
func NewArbiter(sink Sink) *Arbiter {
	return &Arbiter{sink: sink, current: noVoice}
}

// Request asks for the character's voice. Takes over the channel from any
// currently-sounding character.
func (a *Arbiter) Request(character int) {
	if character == a.current {
		return
	}
	a.current = character
	a.sink.Play(character)
}

// Release drops the character's claim. Silences the channel only when that
// character owns it; a release of a superseded voice is a no-op.
func (a *Arbiter) Release(character int) {
	if character != a.current {
		return
	}
	a.current = noVoice
	a.sink.Stop()
}

// Silence stops whatever is sounding, regardless of owner.
func (a *Arbiter) Silence() {
	if a.current == noVoice {
		return
	}
	a.current = noVoice
	a.sink.Stop()
}

// Current returns the character owning the channel, or -1 when silent.
func (a *Arbiter) Current() int {
	return a.current
}
