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

func (r *PostgresRepository) Load(ctx context.Context, clientID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT query
		FROM search_history
		WHERE client_id = $1
		ORDER BY position ASC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []string

	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	return queries, rows.Err()
}

func (r *PostgresRepository) ReplaceAll(
	ctx context.Context,
	clientID string,
	queries []string,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM search_history WHERE client_id = $1
	`, clientID); err != nil {
		return err
	}

	for i, q := range queries {
		if _, err := tx.Exec(ctx, `
			INSERT INTO search_history (client_id, position, query)
			VALUES ($1, $2, $3)
		`, clientID, i, q); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
