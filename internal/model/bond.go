package model

import (
	"time"

	"github.com/google/uuid"
)

// Bond request status constants
const (
	BondStatusPending  = "pending"
	BondStatusApproved = "approved"
	BondStatusDenied   = "denied"
)

// BondRequest is a proposed parent↔child link awaiting the child's decision.
type BondRequest struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	ChildID   uuid.UUID `json:"child_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// IsPending checks if the request is still awaiting a decision.
func (r *BondRequest) IsPending() bool {
	return r.Status == BondStatusPending
}

// IsApproved checks if the request was approved.
func (r *BondRequest) IsApproved() bool {
	return r.Status == BondStatusApproved
}

// IsDenied checks if the request was denied.
func (r *BondRequest) IsDenied() bool {
	return r.Status == BondStatusDenied
}

// PendingBondRequest is a pending request with the parent's display name
// resolved for the child's approval queue.
type PendingBondRequest struct {
	ID         uuid.UUID `json:"id"`
	ParentID   uuid.UUID `json:"parent_id"`
	ParentName string    `json:"parent_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ParentChildBond is the durable, accepted link. Its existence grants the
// parent read access to the child's metrics and lesson history.
type ParentChildBond struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	ChildID   uuid.UUID `json:"child_id"`
	CreatedAt time.Time `json:"created_at"`
}
