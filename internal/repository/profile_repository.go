package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Create inserts a profile row for an account
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (id, first_name, last_name, avatar_color, avatar_letter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		profile.ID,
		profile.FirstName,
		profile.LastName,
		profile.AvatarColor,
		profile.AvatarLetter,
	).Scan(&profile.CreatedAt)

	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// GetByID fetches a profile by account id
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, first_name, last_name, avatar_color, avatar_letter, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.AvatarColor,
		&profile.AvatarLetter,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}

	return &profile, nil
}

// GetByIDs fetches profiles for a set of account ids in a single query
func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	if len(ids) == 0 {
		return []*model.Profile{}, nil
	}

	query := `
		SELECT id, first_name, last_name, avatar_color, avatar_letter, created_at
		FROM profiles
		WHERE id = ANY($1)
		ORDER BY first_name, last_name
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get profiles by ids: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		var profile model.Profile
		err := rows.Scan(
			&profile.ID,
			&profile.FirstName,
			&profile.LastName,
			&profile.AvatarColor,
			&profile.AvatarLetter,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	return profiles, nil
}

// FindStudentByExactNameOrEmail finds a student account whose full name or
// e-mail matches the search term exactly. Partial matching is deliberately
// not supported: the lookup exists for the parent bonding flow and exact
// match preserves child privacy.
func (r *ProfileRepository) FindStudentByExactNameOrEmail(ctx context.Context, term string) (*model.Profile, error) {
	query := `
		SELECT p.id, p.first_name, p.last_name, p.avatar_color, p.avatar_letter, p.created_at
		FROM profiles p
		JOIN user_roles ur ON ur.user_id = p.id
		JOIN users u ON u.id = p.id
		WHERE ur.role = $1
		  AND (
			lower(u.email) = lower(trim($2))
			OR lower(trim(p.first_name || ' ' || p.last_name)) = lower(trim($2))
		  )
		LIMIT 1
	`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, model.RoleStudent, term).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.AvatarColor,
		&profile.AvatarLetter,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find student: %w", err)
	}

	return &profile, nil
}
