package tui

import (
	"fmt"
	"strings"

	"github.com/mkarev/mimic/internal/core"
	"github.com/mkarev/mimic/internal/game"
)

// Face cell geometry. Five faces side by side with a gap between them.
const (
	faceW   = 9
	faceH   = 5
	faceGap = 2
)

var faceClosed = []string{
	"  .---.  ",
	" | o o | ",
	" |  _  | ",
	"  '---'  ",
	"         ",
}

var faceOpen = []string{
	"  .---.  ",
	" | o o | ",
	" | (O) | ",
	"  '---'  ",
	"  ~ ~ ~  ",
}

// StageWidth is the minimum screen width the stage needs.
const StageWidth = game.CharacterCount*faceW + (game.CharacterCount-1)*faceGap

// drawFaces renders the cast on one row of faces, mouths per the open set,
// with a marker under the player's own seat.
func drawFaces(s *core.Screen, y int, open [game.CharacterCount]bool, player int) {
	left := (s.Width() - StageWidth) / 2
	if left < 0 {
		left = 0
	}
	for i := 0; i < game.CharacterCount; i++ {
		art := faceClosed
		if open[i] {
			art = faceOpen
		}
		x := left + i*(faceW+faceGap)
		for row, line := range art {
			s.DrawText(x, y+row, line)
		}
		if i == player {
			s.DrawText(x+2, y+faceH, "▼ YOU")
		}
	}
}

// drawStatus renders the level, score, and lives line.
func drawStatus(s *core.Screen, y int, r *game.Round) {
	hearts := strings.Repeat("♥ ", r.Lives()) + strings.Repeat("♡ ", game.StartingLives-r.Lives())
	status := fmt.Sprintf("level %d/%d   score %d   %s", r.LevelIndex()+1, r.LevelCount(), r.Score(), strings.TrimRight(hearts, " "))
	s.DrawTextCentered(y, status)
}

// stageLayout fixes the vertical positions of the stage elements.
type stageLayout struct {
	statusY int
	facesY  int
	bannerY int
	detailY int
	hintY   int
}

func layoutFor(s *core.Screen) stageLayout {
	facesY := s.Height()/2 - faceH/2 - 1
	if facesY < 2 {
		facesY = 2
	}
	return stageLayout{
		statusY: 0,
		facesY:  facesY,
		bannerY: facesY + faceH + 2,
		detailY: facesY + faceH + 3,
		hintY:   s.Height() - 1,
	}
}

// RenderStage draws the full round view into the screen buffer.
func RenderStage(s *core.Screen, r *game.Round) {
	s.Clear()
	l := layoutFor(s)
	drawStatus(s, l.statusY, r)

	switch r.Phase() {
	case game.PhaseWaiting:
		drawFaces(s, l.facesY, [game.CharacterCount]bool{}, r.PlayerCharacter())
		s.DrawTextCentered(l.bannerY, "MIMIC")
		s.DrawTextCentered(l.detailY, "watch the performance, then sing your part")
		s.DrawTextCentered(l.hintY, "enter: start   q: quit")

	case game.PhaseDemo:
		drawFaces(s, l.facesY, r.DemoOpen(), r.PlayerCharacter())
		s.DrawTextCentered(l.bannerY, "WATCH")
		s.DrawTextCentered(l.hintY, "memorize your part")

	case game.PhaseCountdown:
		drawFaces(s, l.facesY, [game.CharacterCount]bool{}, r.PlayerCharacter())
		s.DrawTextCentered(l.bannerY, fmt.Sprintf("get ready... %d", r.Countdown()))
		s.DrawTextCentered(l.hintY, "space toggles your mouth")

	case game.PhasePlaying:
		drawFaces(s, l.facesY, r.PlayOpen(), r.PlayerCharacter())
		s.DrawTextCentered(l.bannerY, "SING!")
		s.DrawTextCentered(l.hintY, "space: open/close mouth")

	case game.PhaseResult:
		drawFaces(s, l.facesY, [game.CharacterCount]bool{}, r.PlayerCharacter())
		if reason := r.FailReason(); reason != "" {
			s.DrawTextCentered(l.bannerY, "NOT QUITE")
			s.DrawTextCentered(l.detailY, reason)
			s.DrawTextCentered(l.hintY, "enter: try again   q: quit")
		} else {
			s.DrawTextCentered(l.bannerY, "PERFECT!")
			s.DrawTextCentered(l.hintY, "enter: next level   q: quit")
		}

	case game.PhaseGameOver:
		drawFaces(s, l.facesY, [game.CharacterCount]bool{}, game.PlayerUnassigned)
		s.DrawTextCentered(l.bannerY, "GAME OVER")
		s.DrawTextCentered(l.detailY, fmt.Sprintf("score %d · %s", r.Score(), game.RankForScore(r.Score())))
		s.DrawTextCentered(l.hintY, "r: play again   q: quit")
	}
}
