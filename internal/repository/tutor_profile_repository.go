package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type TutorProfileRepository struct {
	pool *pgxpool.Pool
}

func NewTutorProfileRepository(pool *pgxpool.Pool) *TutorProfileRepository {
	return &TutorProfileRepository{pool: pool}
}

// Upsert creates or replaces a tutor's extended profile
func (r *TutorProfileRepository) Upsert(ctx context.Context, tp *model.TutorProfile) error {
	query := `
		INSERT INTO tutor_profiles (user_id, bio, subject, standard_qualifications, custom_qualifications)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			subject = EXCLUDED.subject,
			standard_qualifications = EXCLUDED.standard_qualifications,
			custom_qualifications = EXCLUDED.custom_qualifications,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		tp.UserID,
		tp.Bio,
		tp.Subject,
		tp.StandardQualifications,
		tp.CustomQualifications,
	).Scan(&tp.ID, &tp.CreatedAt, &tp.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert tutor profile: %w", err)
	}

	return nil
}

// GetByUserID fetches one tutor's extended profile
func (r *TutorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.TutorProfile, error) {
	query := `
		SELECT id, user_id, bio, subject, standard_qualifications, custom_qualifications, created_at, updated_at
		FROM tutor_profiles
		WHERE user_id = $1
	`

	var tp model.TutorProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&tp.ID,
		&tp.UserID,
		&tp.Bio,
		&tp.Subject,
		&tp.StandardQualifications,
		&tp.CustomQualifications,
		&tp.CreatedAt,
		&tp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}

	return &tp, nil
}

// GetByUserIDs fetches extended profiles for a set of tutors in a single query
func (r *TutorProfileRepository) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*model.TutorProfile, error) {
	if len(userIDs) == 0 {
		return []*model.TutorProfile{}, nil
	}

	query := `
		SELECT id, user_id, bio, subject, standard_qualifications, custom_qualifications, created_at, updated_at
		FROM tutor_profiles
		WHERE user_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get tutor profiles by ids: %w", err)
	}
	defer rows.Close()

	var tps []*model.TutorProfile
	for rows.Next() {
		var tp model.TutorProfile
		err := rows.Scan(
			&tp.ID,
			&tp.UserID,
			&tp.Bio,
			&tp.Subject,
			&tp.StandardQualifications,
			&tp.CustomQualifications,
			&tp.CreatedAt,
			&tp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tutor profile: %w", err)
		}
		tps = append(tps, &tp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutor profiles: %w", err)
	}

	return tps, nil
}

// ListUserIDs fetches the account ids of every tutor with an extended profile
func (r *TutorProfileRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM tutor_profiles
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutor ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tutor id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutor ids: %w", err)
	}

	return ids, nil
}
