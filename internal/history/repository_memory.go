package history

import (
	"context"
	"sync"
)

// InMemoryRepository keeps the most recent records in a bounded ring.
type InMemoryRepository struct {
	mu      sync.Mutex
	records []*Record
	max     int
}

func NewInMemoryRepository(max int) *InMemoryRepository {
	if max <= 0 {
		max = 500
	}
	return &InMemoryRepository{max: max}
}

func (r *InMemoryRepository) Save(ctx context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	if len(r.records) > r.max {
		r.records = r.records[len(r.records)-r.max:]
	}
	return nil
}

func (r *InMemoryRepository) ListRecent(ctx context.Context, limit int) ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]*Record, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
