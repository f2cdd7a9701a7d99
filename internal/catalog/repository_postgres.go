package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const dishColumns = `
	id,
	name,
	category,
	cuisine,
	tags,
	allergens,
	kcal,
	protein_g,
	time_min,
	price_cents,
	health_score
`

func scanDish(row pgx.Row) (*Dish, error) {
	var d Dish
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Category,
		&d.Cuisine,
		&d.Tags,
		&d.Allergens,
		&d.Kcal,
		&d.ProteinG,
		&d.TimeMin,
		&d.PriceCents,
		&d.HealthScore,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// --------------------------------------------------
// Dishes in a category, stable catalog order
// --------------------------------------------------
func (r *PostgresRepository) GetByCategory(ctx context.Context, category string) ([]Dish, error) {
	query := `
		SELECT ` + dishColumns + `
		FROM dishes
		WHERE category = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}
	return dishes, rows.Err()
}

// --------------------------------------------------
// Lookup by id or exact name
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Dish, error) {
	query := `
		SELECT ` + dishColumns + `
		FROM dishes
		WHERE id = $1 OR name = $1
		LIMIT 1
	`

	d, err := scanDish(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// --------------------------------------------------
// Distinct categories in catalog order
// --------------------------------------------------
func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT category
		FROM dishes
		GROUP BY category
		ORDER BY MIN(position)
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// --------------------------------------------------
// Distinct tags and allergens for filter menus
// --------------------------------------------------
func (r *PostgresRepository) ListFilters(ctx context.Context) (*Filters, error) {
	cats, err := r.Categories(ctx)
	if err != nil {
		return nil, err
	}

	f := &Filters{Categories: cats}

	tagQuery := `SELECT DISTINCT unnest(tags) FROM dishes ORDER BY 1`
	rows, err := r.db.Query(ctx, tagQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		f.Tags = append(f.Tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	allergenQuery := `SELECT DISTINCT unnest(allergens) FROM dishes ORDER BY 1`
	arows, err := r.db.Query(ctx, allergenQuery)
	if err != nil {
		return nil, err
	}
	defer arows.Close()
	for arows.Next() {
		var a string
		if err := arows.Scan(&a); err != nil {
			return nil, err
		}
		f.Allergens = append(f.Allergens, a)
	}
	return f, arows.Err()
}

// --------------------------------------------------
// Seed an empty dishes table from the built-in catalog
// --------------------------------------------------
func (r *PostgresRepository) EnsureSeed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dishes`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	insert := `
		INSERT INTO dishes (
			id, name, category, cuisine, tags, allergens,
			kcal, protein_g, time_min, price_cents, health_score, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for i, d := range SeedDishes() {
		if _, err := r.db.Exec(ctx, insert,
			d.ID, d.Name, d.Category, d.Cuisine, d.Tags, d.Allergens,
			d.Kcal, d.ProteinG, d.TimeMin, d.PriceCents, d.HealthScore, i,
		); err != nil {
			return err
		}
	}
	return nil
}
