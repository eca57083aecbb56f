package multiplayer

import "testing"

func TestAdapterFirstJoinerBecomesHost(t *testing.T) {
	store := NewStore()
	alice := NewAdapter(store, "alice")
	bob := NewAdapter(store, "bob")

	alice.Join("Alice")
	bob.Join("Bob")

	if !alice.IsHost() {
		t.Error("first joiner should be host")
	}
	if bob.IsHost() {
		t.Error("second joiner should not be host")
	}
	players := bob.Players()
	if players["alice"].Name != "Alice" || players["bob"].Name != "Bob" {
		t.Errorf("players = %v", players)
	}
}

func TestAdapterRejoinKeepsRecord(t *testing.T) {
	store := NewStore()
	alice := NewAdapter(store, "alice")
	alice.Join("Alice")
	alice.SetReady(true)

	// A duplicate join (reconnect) must not reset the ready flag.
	alice.Join("Alice")
	if !alice.Players()["alice"].IsReady {
		t.Error("rejoin reset the ready flag")
	}
}

func TestAdapterStartGate(t *testing.T) {
	store := NewStore()
	alice := NewAdapter(store, "alice")
	bob := NewAdapter(store, "bob")
	alice.Join("Alice")

	// One peer, even ready, cannot start.
	alice.SetReady(true)
	if alice.CanStart() {
		t.Error("gate open with a single peer")
	}
	if alice.StartGame() {
		t.Error("start fired with a single peer")
	}

	bob.Join("Bob")
	if alice.CanStart() {
		t.Error("gate open with an unready peer")
	}
	bob.SetReady(true)
	if !alice.CanStart() {
		t.Error("gate closed with two ready peers")
	}

	// Only the host may flip the flag.
	if bob.StartGame() {
		t.Error("non-host started the game")
	}
	if !alice.StartGame() {
		t.Error("host could not start")
	}
	if !bob.Started() {
		t.Error("started flag not visible to the other peer")
	}

	// A second start is a no-op.
	if alice.StartGame() {
		t.Error("start fired twice")
	}
}

func TestAdapterThirdPeerClosesGate(t *testing.T) {
	store := NewStore()
	peers := []*Adapter{
		NewAdapter(store, "a"),
		NewAdapter(store, "b"),
		NewAdapter(store, "c"),
	}
	for _, p := range peers {
		p.Join(string(p.PeerID()))
		p.SetReady(true)
	}
	if peers[0].CanStart() {
		t.Error("gate open with three peers")
	}
}

func TestAdapterHostMigration(t *testing.T) {
	store := NewStore()
	alice := NewAdapter(store, "alice")
	bob := NewAdapter(store, "bob")
	alice.Join("Alice")
	bob.Join("Bob")

	alice.Leave()
	if !bob.IsHost() {
		t.Error("host role did not migrate to the remaining peer")
	}
	if _, ok := bob.Players()["alice"]; ok {
		t.Error("leaver still listed")
	}
}

func TestAdapterMirrorAndMatchLevel(t *testing.T) {
	store := NewStore()
	alice := NewAdapter(store, "alice")
	bob := NewAdapter(store, "bob")
	alice.Join("Alice")
	bob.Join("Bob")

	alice.MirrorRound("Alice", 3, 20, 2)
	bob.MirrorRound("Bob", 2, 50, 5)

	info := alice.GameInfo()
	if info["bob"].Score != 50 || info["bob"].Lives != 2 {
		t.Errorf("mirrored info = %+v", info["bob"])
	}
	if got := alice.MatchLevel(); got != 5 {
		t.Errorf("MatchLevel = %d, want the furthest peer's level", got)
	}
}

func TestRoomsSeparateStores(t *testing.T) {
	rooms := NewRooms()
	main := rooms.Get("main")
	other := rooms.Get("attic")

	if main == other {
		t.Fatal("distinct rooms share a store")
	}
	if rooms.Get("main") != main {
		t.Error("repeat lookup built a new store")
	}

	NewAdapter(main, "a").Join("A")
	if got := other.ConnectedPeers(); len(got) != 0 {
		t.Errorf("peer leaked across rooms: %v", got)
	}
}
