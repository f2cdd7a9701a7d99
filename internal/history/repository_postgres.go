package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO spin_history (
			id,
			room_code,
			seed,
			categories,
			result,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		rec.ID,
		rec.RoomCode,
		rec.Seed,
		rec.Categories,
		rec.Result,
		rec.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*Record, error) {
	query := `
		SELECT
			id,
			room_code,
			seed,
			categories,
			result,
			created_at
		FROM spin_history
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.RoomCode,
			&rec.Seed,
			&rec.Categories,
			&rec.Result,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
