package favorites

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Load the full collection for a client
// --------------------------------------------------
func (r *PostgresRepository) Load(
	ctx context.Context,
	clientID string,
) ([]pairing.Recommendation, error) {

	rows, err := r.db.Query(ctx, `
		SELECT name, type, description, reasoning, estimated_price
		FROM favorites
		WHERE client_id = $1
		ORDER BY position ASC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []pairing.Recommendation

	for rows.Next() {
		var rec pairing.Recommendation
		if err := rows.Scan(
			&rec.Name,
			&rec.Type,
			&rec.Description,
			&rec.Reasoning,
			&rec.EstimatedPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// Rewrite the full collection in one transaction
// --------------------------------------------------
func (r *PostgresRepository) ReplaceAll(
	ctx context.Context,
	clientID string,
	items []pairing.Recommendation,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM favorites WHERE client_id = $1
	`, clientID); err != nil {
		return err
	}

	for i, rec := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO favorites (
				client_id,
				position,
				name,
				type,
				description,
				reasoning,
				estimated_price
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			clientID,
			i,
			rec.Name,
			rec.Type,
			rec.Description,
			rec.Reasoning,
			rec.EstimatedPrice,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
