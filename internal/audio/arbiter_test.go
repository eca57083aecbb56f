package audio

import "testing"

type sinkCall struct {
	op        string
	character int
}

type fakeSink struct {
	calls []sinkCall
}

func (f *fakeSink) Play(character int) {
	f.calls = append(f.calls, sinkCall{"play", character})
}

func (f *fakeSink) Stop() {
	f.calls = append(f.calls, sinkCall{"stop", -1})
}

func TestArbiterNewestRequestWins(t *testing.T) {
	sink := &fakeSink{}
	a := NewArbiter(sink)

	a.Request(0)
	a.Request(3)
	if a.Current() != 3 {
		t.Errorf("Current = %d, want 3", a.Current())
	}
	want := []sinkCall{{"play", 0}, {"play", 3}}
	if len(sink.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sink.calls, want)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, sink.calls[i], want[i])
		}
	}
}

func TestArbiterReleaseOnlyByOwner(t *testing.T) {
	sink := &fakeSink{}
	a := NewArbiter(sink)

	a.Request(0)
	a.Request(3)
	// Character 0 lost the channel; its release must not cut off 3.
	a.Release(0)
	if a.Current() != 3 {
		t.Errorf("Current = %d after stale release, want 3", a.Current())
	}

	a.Release(3)
	if a.Current() != -1 {
		t.Errorf("Current = %d after owner release, want -1", a.Current())
	}
	last := sink.calls[len(sink.calls)-1]
	if last.op != "stop" {
		t.Errorf("last sink call = %v, want stop", last)
	}
}

func TestArbiterRepeatRequestIsNoop(t *testing.T) {
	sink := &fakeSink{}
	a := NewArbiter(sink)

	a.Request(2)
	a.Request(2)
	if len(sink.calls) != 1 {
		t.Errorf("calls = %v, want a single play", sink.calls)
	}
}

func TestArbiterSilence(t *testing.T) {
	sink := &fakeSink{}
	a := NewArbiter(sink)

	// Silence with nothing playing touches nothing.
	a.Silence()
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}

	a.Request(1)
	a.Silence()
	if a.Current() != -1 {
		t.Errorf("Current = %d, want -1", a.Current())
	}
	if sink.calls[len(sink.calls)-1].op != "stop" {
		t.Errorf("calls = %v, want trailing stop", sink.calls)
	}
}
