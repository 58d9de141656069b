package model

import (
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the ISO date format used as month-index keys.
const DateKeyLayout = "2006-01-02"

// AvailabilitySlot is one tutor-declared block of bookable time on one date.
// Times are local time-of-day strings with HH:MM granularity.
type AvailabilitySlot struct {
	ID        uuid.UUID `json:"id"`
	TutorID   uuid.UUID `json:"tutor_id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// DateKey returns the slot's date as an ISO date string.
func (s *AvailabilitySlot) DateKey() string {
	return s.Date.Format(DateKeyLayout)
}

// TutorSlot is an availability slot joined with the owner's display metadata.
type TutorSlot struct {
	AvailabilitySlot
	TutorName    string `json:"tutor_name"`
	TutorColor   string `json:"tutor_color"`
	TutorBio     string `json:"tutor_bio,omitempty"`
	TutorSubject string `json:"tutor_subject,omitempty"`
}

// MonthIndex maps ISO date strings to the slots declared on that date.
// It is a derived artifact, rebuilt on every month-view request.
type MonthIndex map[string][]TutorSlot
