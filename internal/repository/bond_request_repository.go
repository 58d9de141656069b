package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type BondRequestRepository struct {
	pool *pgxpool.Pool
}

func NewBondRequestRepository(pool *pgxpool.Pool) *BondRequestRepository {
	return &BondRequestRepository{pool: pool}
}

// Create inserts a pending bond request
func (r *BondRequestRepository) Create(ctx context.Context, req *model.BondRequest) error {
	query := `
		INSERT INTO bond_requests (parent_id, child_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		req.ParentID,
		req.ChildID,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return fmt.Errorf("create bond request: %w", err)
	}

	return nil
}

// GetByID fetches a bond request by id
func (r *BondRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BondRequest, error) {
	query := `
		SELECT id, parent_id, child_id, status, created_at
		FROM bond_requests
		WHERE id = $1
	`

	var req model.BondRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.ParentID,
		&req.ChildID,
		&req.Status,
		&req.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bond request: %w", err)
	}

	return &req, nil
}

// GetByPair fetches the most recent request for a (parent, child) pair
func (r *BondRequestRepository) GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*model.BondRequest, error) {
	query := `
		SELECT id, parent_id, child_id, status, created_at
		FROM bond_requests
		WHERE parent_id = $1 AND child_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var req model.BondRequest
	err := r.pool.QueryRow(ctx, query, parentID, childID).Scan(
		&req.ID,
		&req.ParentID,
		&req.ChildID,
		&req.Status,
		&req.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bond request by pair: %w", err)
	}

	return &req, nil
}

// GetPendingByChild fetches all pending requests addressed to a child
func (r *BondRequestRepository) GetPendingByChild(ctx context.Context, childID uuid.UUID) ([]*model.BondRequest, error) {
	query := `
		SELECT id, parent_id, child_id, status, created_at
		FROM bond_requests
		WHERE child_id = $1 AND status = $2
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, childID, model.BondStatusPending)
	if err != nil {
		return nil, fmt.Errorf("get pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.BondRequest
	for rows.Next() {
		var req model.BondRequest
		err := rows.Scan(
			&req.ID,
			&req.ParentID,
			&req.ChildID,
			&req.Status,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bond request: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bond requests: %w", err)
	}

	return requests, nil
}

// GetByParent fetches all requests created by a parent
func (r *BondRequestRepository) GetByParent(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error) {
	query := `
		SELECT id, parent_id, child_id, status, created_at
		FROM bond_requests
		WHERE parent_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("get parent requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.BondRequest
	for rows.Next() {
		var req model.BondRequest
		err := rows.Scan(
			&req.ID,
			&req.ParentID,
			&req.ChildID,
			&req.Status,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bond request: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bond requests: %w", err)
	}

	return requests, nil
}

// UpdateStatus sets the status of a request
func (r *BondRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE bond_requests
		SET status = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("request not found")
	}

	return nil
}

// ApproveAndBond marks a pending request approved and inserts the bond row
// in one transaction, so the approved-but-unbonded state cannot be left
// behind by a crash between the two writes.
func (r *BondRequestRepository) ApproveAndBond(ctx context.Context, requestID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin approve tx: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `
		UPDATE bond_requests
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING parent_id, child_id
	`

	var parentID, childID uuid.UUID
	err = tx.QueryRow(ctx, updateQuery, model.BondStatusApproved, requestID, model.BondStatusPending).
		Scan(&parentID, &childID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("request not pending")
		}
		return fmt.Errorf("approve request: %w", err)
	}

	bondQuery := `
		INSERT INTO parent_child_bonds (parent_id, child_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, child_id) DO NOTHING
	`

	if _, err := tx.Exec(ctx, bondQuery, parentID, childID); err != nil {
		return fmt.Errorf("create bond: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit approve tx: %w", err)
	}

	return nil
}
