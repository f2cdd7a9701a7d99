package history

import "context"

// Repository stores spin records.
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
}
