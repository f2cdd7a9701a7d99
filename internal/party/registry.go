package party

import (
	"sync"
	"time"
)

// Registry is the injected, explicitly-owned store of active rooms.
// Lookup is guarded by its own lock; per-room state is guarded by each
// room's mutex.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

func (r *Registry) Get(code string) *Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[code]
}

// PutIfAbsent registers the room, reporting false on a code collision.
func (r *Registry) PutIfAbsent(room *Room) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[room.Code]; exists {
		return false
	}
	r.rooms[room.Code] = room
	return true
}

func (r *Registry) Delete(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, code)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Expire removes and returns every room whose TTL passed.
func (r *Registry) Expire(now time.Time) []*Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*Room
	for code, room := range r.rooms {
		room.mu.Lock()
		past := room.ExpiresAt.Before(now)
		if past {
			room.Closed = true
		}
		room.mu.Unlock()

		if past {
			expired = append(expired, room)
			delete(r.rooms, code)
		}
	}
	return expired
}
