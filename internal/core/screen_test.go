package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	want := "    \n    "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Out-of-bounds writes are dropped, reads return space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, want space", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "abc")
	if got := s.Row(0); got != "   ab" {
		t.Errorf("Row(0) = %q, want %q", got, "   ab")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "hey")
	if got := s.Row(0); got != "    hey    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(1, 0, 4, 3)
	want := " ┌──┐ \n │  │ \n └──┘ \n      "
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(0, 0, 1, 3)
	if got := s.String(); strings.TrimSpace(got) != "" {
		t.Errorf("degenerate box drew %q", got)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(1, 1, 3, '=')
	if got := s.Row(1); got != " === " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawText(0, 0, "abc")
	s.Clear()
	if got := strings.TrimSpace(s.String()); got != "" {
		t.Errorf("Clear left %q", got)
	}
}
