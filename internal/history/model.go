package history

import "time"

// Record is one completed spin, kept for auditing. Writes are
// best-effort: a failed write never fails the spin that produced it.
type Record struct {
	ID         string    `json:"id"`
	RoomCode   string    `json:"room_code,omitempty"`
	Seed       string    `json:"seed"`
	Categories []string  `json:"categories"`
	Result     []string  `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}
