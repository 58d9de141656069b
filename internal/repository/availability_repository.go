package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// CreateBatch inserts all slots of one declaration in a single round trip
func (r *AvailabilityRepository) CreateBatch(ctx context.Context, slots []*model.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}

	query := `
		INSERT INTO tutor_availability (tutor_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	batch := &pgx.Batch{}
	for _, slot := range slots {
		batch.Queue(query, slot.TutorID, slot.Date, slot.StartTime, slot.EndTime)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, slot := range slots {
		if err := results.QueryRow().Scan(&slot.ID, &slot.CreatedAt); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
	}

	return nil
}

// GetByDateRange fetches all slots whose date falls in [from, to] inclusive.
// Slots are ordered by date, then start time, then id so that a day's slots
// come back deterministically.
func (r *AvailabilityRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, tutor_id, date, start_time, end_time, created_at
		FROM tutor_availability
		WHERE date >= $1 AND date <= $2
		ORDER BY date, start_time, id
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get slots by date range: %w", err)
	}
	defer rows.Close()

	var slots []*model.AvailabilitySlot
	for rows.Next() {
		var slot model.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.TutorID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}

// GetByTutorAndDate fetches a tutor's slots on one date
func (r *AvailabilityRepository) GetByTutorAndDate(ctx context.Context, tutorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, tutor_id, date, start_time, end_time, created_at
		FROM tutor_availability
		WHERE tutor_id = $1 AND date = $2
		ORDER BY start_time, id
	`

	rows, err := r.pool.Query(ctx, query, tutorID, date)
	if err != nil {
		return nil, fmt.Errorf("get slots by tutor and date: %w", err)
	}
	defer rows.Close()

	var slots []*model.AvailabilitySlot
	for rows.Next() {
		var slot model.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.TutorID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}
