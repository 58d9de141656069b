package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicitly-constructed per-sign-in state handed to callers.
// It is an owned value: created on sign-in, refreshed on demand, discarded on
// sign-out. Nothing in this package keeps a global copy.
type Session struct {
	UserID   uuid.UUID       `json:"user_id"`
	Email    string          `json:"email"`
	Role     Role            `json:"role"`
	Profile  Profile         `json:"profile"`
	Tutor    *TutorProfile   `json:"tutor_profile,omitempty"`
	Metrics  *StudentMetrics `json:"metrics,omitempty"`
	Children []Profile       `json:"children,omitempty"`
	LoadedAt time.Time       `json:"loaded_at"`
}

// RefreshSession is a persisted, hashed refresh token with revocation state.
type RefreshSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedAt time.Time  `json:"created_at"`
}
