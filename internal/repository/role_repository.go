package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// Assign records the role claim for an account
func (r *RoleRepository) Assign(ctx context.Context, userID uuid.UUID, role model.Role) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role
	`

	_, err := r.pool.Exec(ctx, query, userID, role)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	return nil
}

// GetByUserID fetches the role claim for an account
func (r *RoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Role, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE user_id = $1
	`

	var role model.Role
	err := r.pool.QueryRow(ctx, query, userID).Scan(&role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}

	return role, nil
}
