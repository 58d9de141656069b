package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Display data lives in Profile.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleTutor   Role = "tutor"
)

// IsValid reports whether the role is one of the known role claims.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleParent, RoleTutor:
		return true
	}
	return false
}

type UserRole struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}
