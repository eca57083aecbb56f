package multiplayer

// DuetSize is the fixed party size for a duet match.
const DuetSize = 2

// Adapter binds one local session to a room's shared store. It owns the
// join/ready/host protocol; the store stays a dumb broadcast map.
type Adapter struct {
	store *Store
	id    PeerID
}

// NewAdapter creates an adapter for the local peer. Call Join before
// anything else.
func NewAdapter(store *Store, id PeerID) *Adapter {
	return &Adapter{store: store, id: id}
}

// PeerID returns the local peer's identity.
func (a *Adapter) PeerID() PeerID {
	return a.id
}

// ConnectedPeers returns the room's peers in join order.
func (a *Adapter) ConnectedPeers() []PeerID {
	return a.store.ConnectedPeers()
}

// Join connects the peer and registers it in the shared players map. The
// first entry into an empty map becomes host. Returns the change
// subscription for the room.
func (a *Adapter) Join(name string) <-chan Change {
	ch := a.store.Connect(a.id)
	a.store.Update(func(tx *Txn) {
		players := clonePlayers(tx.Get(KeyPlayers))
		if _, ok := players[a.id]; !ok {
			players[a.id] = PlayerRecord{
				Name:   name,
				IsHost: len(players) == 0,
			}
		}
		tx.Set(KeyPlayers, electHost(players, tx.Peers()))
	})
	return ch
}

// SetReady flips the local peer's ready flag.
func (a *Adapter) SetReady(ready bool) {
	a.store.Write(KeyPlayers, func(v any) any {
		players := clonePlayers(v)
		rec, ok := players[a.id]
		if !ok {
			return players
		}
		rec.IsReady = ready
		players[a.id] = rec
		return players
	})
}

// electHost re-elects the host if the listed one is gone: the earliest
// joined connected peer takes over. The election is deterministic, so any
// peer may run it and all arrive at the same host.
func electHost(players map[PeerID]PlayerRecord, connected []PeerID) map[PeerID]PlayerRecord {
	for _, id := range connected {
		if players[id].IsHost {
			return players
		}
	}
	if len(connected) == 0 {
		return players
	}
	heir := connected[0]
	for id, rec := range players {
		rec.IsHost = id == heir
		players[id] = rec
	}
	return players
}

// EnsureHost runs a host election over the current room state. Peers call
// it whenever the player list changes.
func (a *Adapter) EnsureHost() {
	a.store.Update(func(tx *Txn) {
		tx.Set(KeyPlayers, electHost(clonePlayers(tx.Get(KeyPlayers)), tx.Peers()))
	})
}

// IsHost reports whether the local peer currently holds the host role.
func (a *Adapter) IsHost() bool {
	return readPlayers(a.store)[a.id].IsHost
}

// Players returns a copy of the shared players map.
func (a *Adapter) Players() map[PeerID]PlayerRecord {
	return readPlayers(a.store)
}

// GameInfo returns a copy of the shared per-peer round mirrors.
func (a *Adapter) GameInfo() map[PeerID]GameInfoRecord {
	return readGameInfo(a.store)
}

// Started returns the shared game-started flag.
func (a *Adapter) Started() bool {
	return readStarted(a.store)
}

// canStart reports the readiness gate over a consistent snapshot: exactly
// DuetSize peers connected and every one of them flagged ready.
func canStart(players map[PeerID]PlayerRecord, connected []PeerID) bool {
	if len(connected) != DuetSize {
		return false
	}
	for _, id := range connected {
		if !players[id].IsReady {
			return false
		}
	}
	return true
}

// CanStart reports whether the match may begin.
func (a *Adapter) CanStart() bool {
	return canStart(readPlayers(a.store), a.store.ConnectedPeers())
}

// StartGame flips the shared started flag. Only the host may flip it, and
// only while the readiness gate holds; the whole check runs inside one
// store transaction so two racing starts cannot both fire.
func (a *Adapter) StartGame() bool {
	started := false
	a.store.Update(func(tx *Txn) {
		if already, _ := tx.Get(KeyGameStarted).(bool); already {
			return
		}
		players := clonePlayers(tx.Get(KeyPlayers))
		if !players[a.id].IsHost || !canStart(players, tx.Peers()) {
			return
		}
		started = true
		tx.Set(KeyGameStarted, true)
	})
	return started
}

// MirrorRound publishes the local round's headline numbers for the other
// peer's sidebar.
func (a *Adapter) MirrorRound(name string, lives, score, level int) {
	a.store.Write(KeyGameInfo, func(v any) any {
		info := cloneGameInfo(v)
		info[a.id] = GameInfoRecord{Name: name, Lives: lives, Score: score, Level: level}
		return info
	})
}

// MatchLevel returns the furthest level any peer has reached. Both sides
// render the shared demo from it, so the duet stays on one song.
func (a *Adapter) MatchLevel() int {
	level := 0
	for _, rec := range readGameInfo(a.store) {
		if rec.Level > level {
			level = rec.Level
		}
	}
	return level
}

// Leave removes the peer from the shared maps and disconnects it,
// handing the host role on if needed.
func (a *Adapter) Leave() {
	a.store.Disconnect(a.id)
	a.store.Update(func(tx *Txn) {
		players := clonePlayers(tx.Get(KeyPlayers))
		delete(players, a.id)
		tx.Set(KeyPlayers, electHost(players, tx.Peers()))

		info := cloneGameInfo(tx.Get(KeyGameInfo))
		delete(info, a.id)
		tx.Set(KeyGameInfo, info)
	})
}
