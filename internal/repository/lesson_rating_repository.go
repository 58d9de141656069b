package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type LessonRatingRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRatingRepository(pool *pgxpool.Pool) *LessonRatingRepository {
	return &LessonRatingRepository{pool: pool}
}

// Create records a lesson rating
func (r *LessonRatingRepository) Create(ctx context.Context, rating *model.LessonRating) error {
	query := `
		INSERT INTO lesson_ratings (student_id, admin_id, focus, skill, revision, attitude, potential, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		rating.StudentID,
		rating.AdminID,
		rating.Focus,
		rating.Skill,
		rating.Revision,
		rating.Attitude,
		rating.Potential,
		rating.Notes,
	).Scan(&rating.ID, &rating.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lesson rating: %w", err)
	}

	return nil
}

// GetByStudent fetches a student's lesson history, newest first
func (r *LessonRatingRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.LessonRating, error) {
	query := `
		SELECT id, student_id, admin_id, focus, skill, revision, attitude, potential, notes, created_at
		FROM lesson_ratings
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*model.LessonRating
	for rows.Next() {
		var rating model.LessonRating
		err := rows.Scan(
			&rating.ID,
			&rating.StudentID,
			&rating.AdminID,
			&rating.Focus,
			&rating.Skill,
			&rating.Revision,
			&rating.Attitude,
			&rating.Potential,
			&rating.Notes,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson ratings: %w", err)
	}

	return ratings, nil
}

// AverageByStudent computes per-axis averages over a student's ratings.
// A student with no ratings yields zeroed metrics.
func (r *LessonRatingRepository) AverageByStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentMetrics, error) {
	query := `
		SELECT
			COALESCE(AVG(focus), 0),
			COALESCE(AVG(skill), 0),
			COALESCE(AVG(revision), 0),
			COALESCE(AVG(attitude), 0),
			COALESCE(AVG(potential), 0),
			COUNT(*)
		FROM lesson_ratings
		WHERE student_id = $1
	`

	var metrics model.StudentMetrics
	err := r.pool.QueryRow(ctx, query, studentID).Scan(
		&metrics.Focus,
		&metrics.Skill,
		&metrics.Revision,
		&metrics.Attitude,
		&metrics.Potential,
		&metrics.Lessons,
	)
	if err != nil {
		return nil, fmt.Errorf("average student ratings: %w", err)
	}

	return &metrics, nil
}
