package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BondRepository struct {
	pool *pgxpool.Pool
}

func NewBondRepository(pool *pgxpool.Pool) *BondRepository {
	return &BondRepository{pool: pool}
}

// Exists checks whether a bond links the pair
func (r *BondRepository) Exists(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM parent_child_bonds
			WHERE parent_id = $1 AND child_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, parentID, childID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check bond: %w", err)
	}

	return exists, nil
}

// Create inserts a bond. Idempotent: re-creating an existing pair is a no-op,
// which lets the approval repair path re-run safely.
func (r *BondRepository) Create(ctx context.Context, parentID, childID uuid.UUID) error {
	query := `
		INSERT INTO parent_child_bonds (parent_id, child_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, child_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, parentID, childID)
	if err != nil {
		return fmt.Errorf("create bond: %w", err)
	}

	return nil
}

// GetChildIDs fetches the ids of all children bonded to a parent
func (r *BondRepository) GetChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT child_id
		FROM parent_child_bonds
		WHERE parent_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("get bonded children: %w", err)
	}
	defer rows.Close()

	var childIDs []uuid.UUID
	for rows.Next() {
		var childID uuid.UUID
		if err := rows.Scan(&childID); err != nil {
			return nil, fmt.Errorf("scan child id: %w", err)
		}
		childIDs = append(childIDs, childID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate child ids: %w", err)
	}

	return childIDs, nil
}
