package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating axis bounds
const (
	RatingMin = 1
	RatingMax = 5
)

// LessonRating is an admin-recorded assessment of one lesson.
// All five axes are scored 1..5.
type LessonRating struct {
	ID        uuid.UUID  `json:"id"`
	StudentID uuid.UUID  `json:"student_id"`
	AdminID   *uuid.UUID `json:"admin_id"`
	Focus     int        `json:"focus"`
	Skill     int        `json:"skill"`
	Revision  int        `json:"revision"`
	Attitude  int        `json:"attitude"`
	Potential int        `json:"potential"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}

// StudentMetrics are per-axis averages over a student's lesson ratings.
type StudentMetrics struct {
	Focus     float64 `json:"focus"`
	Skill     float64 `json:"skill"`
	Revision  float64 `json:"revision"`
	Attitude  float64 `json:"attitude"`
	Potential float64 `json:"potential"`
	Lessons   int     `json:"lessons"`
}
