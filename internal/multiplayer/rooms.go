package multiplayer

import "sync"

// Rooms maps room names to their shared stores. Stores are created on
// first use and live for the life of the server; the stores themselves
// clear their state when a room stays empty past the grace delay.
type Rooms struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRooms creates an empty room registry.
func NewRooms() *Rooms {
	return &Rooms{stores: make(map[string]*Store)}
}

// Get returns the store for a room, creating it on first use.
func (r *Rooms) Get(name string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[name]
	if !ok {
		s = NewStore()
		r.stores[name] = s
	}
	return s
}

// Count returns the number of rooms ever opened.
func (r *Rooms) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
