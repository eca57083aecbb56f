package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/mimic/internal/audio"
	"github.com/mkarev/mimic/internal/core"
	"github.com/mkarev/mimic/internal/game"
	"github.com/mkarev/mimic/internal/storage"
)

// Model is the Bubble Tea model for a solo run.
type Model struct {
	round   *game.Round
	arbiter *audio.Arbiter
	store   *storage.Store
	config  core.RuntimeConfig
	screen  *core.Screen
	player  string

	runSaved bool
	quitting bool
}

// NewModel creates the solo model. A nil store disables persistence; a nil
// arbiter is not allowed (pass one over a nil sink for silence).
func NewModel(catalog *game.Catalog, arbiter *audio.Arbiter, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		round:   game.NewRound(catalog, cfg.Seed),
		arbiter: arbiter,
		store:   store,
		config:  cfg,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player:  player,
	}
}

// Init returns no command: the activation loop only runs in the demo and
// play phases, and those start from the first key press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen = core.NewScreen(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	case CountdownMsg:
		return m.handleCountdown()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now().UnixMilli()

	switch msg.String() {
	case "ctrl+c", "q":
		m.arbiter.Silence()
		m.quitting = true
		return m, tea.Quit

	case "enter":
		switch m.round.Phase() {
		case game.PhaseWaiting:
			return m, m.applyEffects(m.round.Dispatch(game.StartEvent{NowMs: now}))
		case game.PhaseResult:
			if m.round.FailReason() != "" {
				return m, m.applyEffects(m.round.Dispatch(game.RetryEvent{NowMs: now}))
			}
			return m, m.applyEffects(m.round.Dispatch(game.NextEvent{NowMs: now}))
		}

	case " ":
		// Terminals deliver no key-release events, so space is a toggle:
		// one press opens the mouth, the next closes it.
		if m.round.Phase() == game.PhasePlaying {
			if m.round.MouthDown() {
				return m, m.applyEffects(m.round.Dispatch(game.PressUpEvent{NowMs: now}))
			}
			return m, m.applyEffects(m.round.Dispatch(game.PressDownEvent{NowMs: now}))
		}

	case "r":
		if m.round.Phase() == game.PhaseGameOver {
			return m, m.applyEffects(m.round.Dispatch(game.ResetEvent{}))
		}
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	effects := m.round.Dispatch(game.TickEvent{NowMs: time.Now().UnixMilli()})
	cmd := m.applyEffects(effects)

	// Re-arm only while a phase that consumes ticks is active; a stale
	// tick landing after a transition dies here.
	if p := m.round.Phase(); p == game.PhaseDemo || p == game.PhasePlaying {
		return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
	}
	return m, cmd
}

func (m Model) handleCountdown() (tea.Model, tea.Cmd) {
	effects := m.round.Dispatch(game.CountdownTickEvent{NowMs: time.Now().UnixMilli()})
	cmd := m.applyEffects(effects)
	if m.round.Phase() == game.PhaseCountdown {
		return m, tea.Batch(cmd, countdownCmd())
	}
	return m, cmd
}

// applyEffects runs the round's side effects and converts phase changes
// into the scheduling commands that keep the loops going.
func (m *Model) applyEffects(effects []game.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case game.VoiceOnEffect:
			m.arbiter.Request(e.Character)
		case game.VoiceOffEffect:
			m.arbiter.Release(e.Character)
		case game.PhaseChangedEffect:
			switch e.To {
			case game.PhaseDemo, game.PhasePlaying:
				cmds = append(cmds, tickCmd(m.config.TickRate))
			case game.PhaseCountdown:
				cmds = append(cmds, countdownCmd())
			case game.PhaseWaiting:
				m.runSaved = false
			}
		case game.RunEndedEffect:
			m.saveRun(e)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// saveRun persists the finished run once per playthrough, best effort.
func (m *Model) saveRun(e game.RunEndedEffect) {
	if m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.player, e.Score, e.Rank, e.LevelsCleared, storage.ModeSolo)
	m.runSaved = true
}

// View renders the current round state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	RenderStage(m.screen, m.round)
	return m.screen.String()
}

// Run starts the Bubble Tea program for a solo session.
func Run(catalog *game.Catalog, arbiter *audio.Arbiter, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewModel(catalog, arbiter, store, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
