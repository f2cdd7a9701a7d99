package party

import (
	"errors"
	"sync"
	"time"

	"mealslot/internal/spin"
)

var (
	ErrNotFound       = errors.New("room not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrHostOnly       = errors.New("only the host can spin")
	ErrCodeExhausted  = errors.New("could not allocate a unique room code")
)

// Member is one participant in a room. Slice position in Room.members
// is join order.
type Member struct {
	ID          string           `json:"id"`
	Nickname    string           `json:"nickname"`
	Constraints spin.Constraints `json:"constraints"`
}

// Room is a multiplayer session. All mutations go through the room
// mutex so that update -> recompute merge -> broadcast appears atomic
// to concurrent requests for the same room.
//
// Lifecycle: created with the host as first member, active while
// members remain, closed when the host leaves or the TTL expires.
// Host departure terminating the room is a deliberate design choice,
// not a bug; there is no host migration.
type Room struct {
	mu sync.Mutex

	Code      string
	HostID    string
	members   []*Member
	PowerUps  spin.PowerUps
	Merged    spin.Constraints
	State     map[string]any
	ExpiresAt time.Time
	Closed    bool
}

func (r *Room) member(id string) *Member {
	for _, m := range r.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (r *Room) removeMember(id string) bool {
	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) recomputeMerged() {
	list := make([]spin.Constraints, 0, len(r.members))
	for _, m := range r.members {
		list = append(list, m.Constraints)
	}
	r.Merged = spin.Merge(list)
}

// StateView is the room snapshot broadcast to members and returned by
// the state endpoint.
type StateView struct {
	Code              string           `json:"code"`
	Members           []Member         `json:"members"`
	MergedConstraints spin.Constraints `json:"mergedConstraints"`
	State             map[string]any   `json:"state"`
}

// snapshot must be called with the room mutex held. The view is
// handed to json marshaling outside the mutex, so it must not alias
// the live state map or the slices stored in it.
func (r *Room) snapshot() *StateView {
	state := make(map[string]any, len(r.State))
	for k, v := range r.State {
		if s, ok := v.([]string); ok {
			state[k] = append([]string(nil), s...)
		} else {
			state[k] = v
		}
	}
	view := &StateView{
		Code:              r.Code,
		MergedConstraints: r.Merged,
		State:             state,
	}
	for _, m := range r.members {
		view.Members = append(view.Members, *m)
	}
	return view
}
