// Package multiplayer implements the shared-state layer for duet sessions.
// All peers are sessions of one server process, so the shared store is an
// in-process broadcast key-value map rather than a networked one; the
// adapter on top of it only ever sees the read/write/subscribe surface.
package multiplayer

import (
	"sync"
	"time"
)

// PeerID identifies one connected session within a room.
type PeerID string

// Change is one key update delivered to subscribers.
type Change struct {
	Key   string
	Value any
}

// DefaultClearDelay is how long a room's shared state survives after the
// last peer disconnects. A quick reconnect within the window resumes the
// session instead of starting over.
const DefaultClearDelay = 15 * time.Second

const changeBufferSize = 64

// Store is a broadcast key-value map shared by every peer in a room.
// Writes are atomic read-modify-write per key and fan out to every
// subscriber; peers are listed in join order.
type Store struct {
	mu     sync.Mutex
	values map[string]any
	peers  []PeerID
	subs   map[PeerID]chan Change

	// ClearDelay overrides DefaultClearDelay when set before the first
	// connect. Tests shorten it.
	ClearDelay time.Duration
	clearTimer *time.Timer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
		subs:   make(map[PeerID]chan Change),
	}
}

// Connect registers a peer and returns its change subscription. A second
// connect under the same ID replaces the old subscription but keeps the
// peer's join position.
func (s *Store) Connect(id PeerID) <-chan Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}

	if old, ok := s.subs[id]; ok {
		close(old)
	} else {
		s.peers = append(s.peers, id)
	}
	ch := make(chan Change, changeBufferSize)
	s.subs[id] = ch
	return ch
}

// Disconnect removes a peer. When the room empties, the shared state is
// cleared after the grace delay unless someone reconnects first.
func (s *Store) Disconnect(id PeerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.subs[id]
	if !ok {
		return
	}
	close(ch)
	delete(s.subs, id)
	for i, p := range s.peers {
		if p == id {
			s.peers = append(s.peers[:i], s.peers[i+1:]...)
			break
		}
	}

	if len(s.peers) == 0 {
		delay := s.ClearDelay
		if delay <= 0 {
			delay = DefaultClearDelay
		}
		s.clearTimer = time.AfterFunc(delay, s.clearIfEmpty)
	}
}

func (s *Store) clearIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.peers) > 0 {
		return
	}
	s.values = make(map[string]any)
	s.clearTimer = nil
}

// ConnectedPeers returns the peers in join order.
func (s *Store) ConnectedPeers() []PeerID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PeerID, len(s.peers))
	copy(out, s.peers)
	return out
}

// Read returns the current value for a key, or nil when unset.
func (s *Store) Read(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Write applies the updater to the key's current value under the store
// lock, stores the result, and broadcasts the change to every subscriber.
func (s *Store) Write(key string, updater func(any) any) {
	s.Update(func(tx *Txn) {
		tx.Set(key, updater(tx.Get(key)))
	})
}

// Txn gives an Update callback atomic access to the room state. It is only
// valid inside the callback; the store lock is held for its whole extent,
// so callbacks must not touch the store's own methods.
type Txn struct {
	s       *Store
	changes []Change
}

// Get returns the current value for a key, or nil when unset.
func (t *Txn) Get(key string) any {
	return t.s.values[key]
}

// Set stores a value and queues its broadcast.
func (t *Txn) Set(key string, v any) {
	t.s.values[key] = v
	t.changes = append(t.changes, Change{Key: key, Value: v})
}

// Peers returns the connected peers in join order.
func (t *Txn) Peers() []PeerID {
	out := make([]PeerID, len(t.s.peers))
	copy(out, t.s.peers)
	return out
}

// Update runs the callback under the store lock and broadcasts every Set,
// in call order, to all subscribers. Cross-key invariants (host election,
// start gating) go through here so no peer observes a half-applied state.
// Slow subscribers lose their oldest pending change rather than blocking
// the writer.
func (s *Store) Update(fn func(*Txn)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Txn{s: s}
	fn(tx)

	for _, change := range tx.changes {
		for _, ch := range s.subs {
			select {
			case ch <- change:
			default:
				select {
				case <-ch:
				default:
				}
				select {
				case ch <- change:
				default:
				}
			}
		}
	}
}
