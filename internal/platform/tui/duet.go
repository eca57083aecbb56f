package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/mimic/internal/audio"
	"github.com/mkarev/mimic/internal/core"
	"github.com/mkarev/mimic/internal/game"
	"github.com/mkarev/mimic/internal/multiplayer"
	"github.com/mkarev/mimic/internal/storage"
)

// ChangeMsg delivers one shared-store change to the model.
type ChangeMsg multiplayer.Change

// roomClosedMsg arrives when the local subscription is gone.
type roomClosedMsg struct{}

// waitForChange blocks on the room subscription and feeds the next change
// into the Bubble Tea loop. Re-armed after every message.
func waitForChange(ch <-chan multiplayer.Change) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return roomClosedMsg{}
		}
		return ChangeMsg(c)
	}
}

type roomStage int

const (
	roomNameEntry roomStage = iota
	roomLobby
	roomPlaying
)

// RoomModel is the Bubble Tea model for a duet session: name entry, then
// the ready-up lobby, then the game with the partner's sidebar.
type RoomModel struct {
	roomName string
	adapter  *multiplayer.Adapter
	changes  <-chan multiplayer.Change

	catalog *game.Catalog
	arbiter *audio.Arbiter
	scores  *storage.Store
	config  core.RuntimeConfig

	stage      roomStage
	input      textinput.Model
	name       string
	game       Model
	lastMirror multiplayer.GameInfoRecord
	matchSaved bool
	quitting   bool
}

// NewRoomModel creates the duet model for one connecting session.
func NewRoomModel(roomName string, adapter *multiplayer.Adapter, catalog *game.Catalog, arbiter *audio.Arbiter, scores *storage.Store, cfg core.RuntimeConfig, defaultName string) RoomModel {
	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 16
	input.SetValue(defaultName)
	input.Focus()

	return RoomModel{
		roomName: roomName,
		adapter:  adapter,
		catalog:  catalog,
		arbiter:  arbiter,
		scores:   scores,
		config:   cfg,
		input:    input,
	}
}

// Init starts the name input cursor.
func (m RoomModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the duet session.
func (m RoomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m.leave()
		case "q":
			// The name field needs the letter; elsewhere q quits.
			if m.stage != roomNameEntry {
				return m.leave()
			}
		}
	}
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = ws.Width
		m.config.ScreenH = ws.Height
	}
	if _, ok := msg.(roomClosedMsg); ok {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.stage {
	case roomNameEntry:
		return m.updateNameEntry(msg)
	case roomLobby:
		return m.updateLobby(msg)
	default:
		return m.updatePlaying(msg)
	}
}

func (m RoomModel) leave() (tea.Model, tea.Cmd) {
	if m.adapter != nil && m.stage != roomNameEntry {
		m.adapter.Leave()
	}
	m.arbiter.Silence()
	m.quitting = true
	return m, tea.Quit
}

func (m RoomModel) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.name = strings.TrimSpace(m.input.Value())
		if m.name == "" {
			m.name = "anonymous"
		}
		m.changes = m.adapter.Join(m.name)
		m.stage = roomLobby
		return m, waitForChange(m.changes)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RoomModel) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			ready := m.adapter.Players()[m.adapter.PeerID()].IsReady
			m.adapter.SetReady(!ready)
		case "enter":
			if m.adapter.IsHost() {
				m.adapter.StartGame()
			}
		}
		if m.adapter.Started() {
			return m.enterGame()
		}
		return m, nil

	case ChangeMsg:
		if m.adapter.Started() {
			return m.enterGame()
		}
		return m, waitForChange(m.changes)
	}
	return m, nil
}

// enterGame switches the session into the playing stage. Both peers flip
// on the same shared change, so the duet starts together.
func (m RoomModel) enterGame() (tea.Model, tea.Cmd) {
	m.stage = roomPlaying
	m.game = NewModel(m.catalog, m.arbiter, nil, m.config, m.name)
	m.mirror()
	return m, tea.Batch(m.game.Init(), waitForChange(m.changes))
}

func (m RoomModel) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(ChangeMsg); ok {
		// Sidebar state is read at render time; just keep listening.
		return m, waitForChange(m.changes)
	}

	updated, cmd := m.game.Update(msg)
	if inner, ok := updated.(Model); ok {
		m.game = inner
	}
	m.mirror()
	m.maybeSaveMatch()
	return m, cmd
}

// mirror publishes the local round state when it changed.
func (m *RoomModel) mirror() {
	rec := multiplayer.GameInfoRecord{
		Name:  m.name,
		Lives: m.game.round.Lives(),
		Score: m.game.round.Score(),
		Level: m.game.round.LevelIndex(),
	}
	if rec == m.lastMirror {
		return
	}
	m.lastMirror = rec
	m.adapter.MirrorRound(rec.Name, rec.Lives, rec.Score, rec.Level)
}

// maybeSaveMatch stores the duet outcome once, from the host side, when
// the local run ends.
func (m *RoomModel) maybeSaveMatch() {
	if m.matchSaved || m.scores == nil || !m.adapter.IsHost() {
		return
	}
	if m.game.round.Phase() != game.PhaseGameOver {
		return
	}
	info := m.adapter.GameInfo()
	ids := make([]multiplayer.PeerID, 0, len(info))
	for id := range info {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) < multiplayer.DuetSize {
		return
	}
	a, b := info[ids[0]], info[ids[1]]
	//nolint:errcheck // Best-effort save, session continues regardless
	m.scores.SaveDuetMatch(m.roomName, a.Name, b.Name, a.Score, b.Score)
	//nolint:errcheck
	m.scores.SaveRun(m.name, m.game.round.Score(), game.RankForScore(m.game.round.Score()), m.game.round.Score()/game.LevelReward, storage.ModeDuet)
	m.matchSaved = true
}

// View renders the current stage.
func (m RoomModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.stage {
	case roomNameEntry:
		return fmt.Sprintf(
			"\n  %s\n\n  room %q\n\n  %s\n\n  %s\n",
			titleStyle.Render("MIMIC · duet"),
			m.roomName,
			m.input.View(),
			labelStyle.Render("enter: join   ctrl+c: quit"),
		)
	case roomLobby:
		return m.viewLobby()
	default:
		return renderWithSidebar(m.game.View(), m.sidebar())
	}
}

func (m RoomModel) viewLobby() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s\n\n", titleStyle.Render(fmt.Sprintf("room %q", m.roomName)))

	players := m.adapter.Players()
	for _, id := range m.adapter.ConnectedPeers() {
		rec, ok := players[id]
		if !ok {
			continue
		}
		marker := waitStyle.Render("waiting")
		if rec.IsReady {
			marker = readyStyle.Render("ready")
		}
		host := ""
		if rec.IsHost {
			host = " (host)"
		}
		fmt.Fprintf(&sb, "  %-16s %s%s\n", rec.Name, marker, host)
	}
	for i := len(players); i < multiplayer.DuetSize; i++ {
		fmt.Fprintf(&sb, "  %s\n", labelStyle.Render("waiting for a partner..."))
	}

	sb.WriteString("\n  " + labelStyle.Render("r: toggle ready   q: leave"))
	if m.adapter.IsHost() && m.adapter.CanStart() {
		sb.WriteString("\n  " + readyStyle.Render("enter: start the duet"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// sidebar shows both performers' live numbers and the shared match level.
func (m RoomModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("duet") + "\n\n")

	info := m.adapter.GameInfo()
	ids := make([]multiplayer.PeerID, 0, len(info))
	for id := range info {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		rec := info[id]
		you := ""
		if id == m.adapter.PeerID() {
			you = " (you)"
		}
		fmt.Fprintf(&sb, "%s%s\n", rec.Name, you)
		fmt.Fprintf(&sb, "%s\n\n", labelStyle.Render(fmt.Sprintf("lvl %d  score %d  lives %d", rec.Level+1, rec.Score, rec.Lives)))
	}
	fmt.Fprintf(&sb, "match level %d", m.adapter.MatchLevel()+1)
	return sb.String()
}
