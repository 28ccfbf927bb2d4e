package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type PostgresItemRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresItemRepository(pool *pgxpool.Pool) *PostgresItemRepository {
	return &PostgresItemRepository{pool: pool}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	item.Prepare()

	query := `
		INSERT INTO items (id, name, description, price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	item.CreatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Quantity,
		item.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresItemRepository) FindByName(ctx context.Context, name string) (*models.Item, error) {
	query := `SELECT id, name, description, price, quantity, created_at
		FROM items WHERE name = $1`

	return r.scanItem(r.pool.QueryRow(ctx, query, name))
}

func (r *PostgresItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	query := `SELECT id, name, description, price, quantity, created_at
		FROM items WHERE id = $1`

	return r.scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *PostgresItemRepository) scanItem(row pgx.Row) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

func (r *PostgresItemRepository) All(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, description, price, quantity, created_at
		FROM items ORDER BY created_at, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
