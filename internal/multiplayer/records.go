package multiplayer

// Shared store keys. Every duet room uses the same three.
const (
	KeyPlayers     = "players"
	KeyGameInfo    = "gameInfo"
	KeyGameStarted = "gameStarted"
)

// PlayerRecord is one peer's entry in the shared players map.
type PlayerRecord struct {
	Name    string
	IsReady bool
	IsHost  bool
}

// GameInfoRecord mirrors one peer's live round state for the other side's
// sidebar.
type GameInfoRecord struct {
	Name  string
	Lives int
	Score int
	Level int
}

// readPlayers returns a copy of the shared players map. Copying keeps
// updater functions free to mutate their working map without racing
// subscribers that hold the previous value.
func readPlayers(s *Store) map[PeerID]PlayerRecord {
	return clonePlayers(s.Read(KeyPlayers))
}

func clonePlayers(v any) map[PeerID]PlayerRecord {
	current, _ := v.(map[PeerID]PlayerRecord)
	out := make(map[PeerID]PlayerRecord, len(current))
	for id, rec := range current {
		out[id] = rec
	}
	return out
}

// readGameInfo returns a copy of the shared per-peer round mirrors.
func readGameInfo(s *Store) map[PeerID]GameInfoRecord {
	return cloneGameInfo(s.Read(KeyGameInfo))
}

func cloneGameInfo(v any) map[PeerID]GameInfoRecord {
	current, _ := v.(map[PeerID]GameInfoRecord)
	out := make(map[PeerID]GameInfoRecord, len(current))
	for id, rec := range current {
		out[id] = rec
	}
	return out
}

// readStarted returns the shared game-started flag.
func readStarted(s *Store) bool {
	started, _ := s.Read(KeyGameStarted).(bool)
	return started
}
