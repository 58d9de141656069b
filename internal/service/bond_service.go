package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// BondService drives the parent↔child bonding state machine:
// none → pending → approved|denied, with approval spawning the durable bond.
type BondService struct {
	requestRepo BondRequestRepository
	bondRepo    BondRepository
	profileRepo ProfileRepository
	logger      *zap.Logger
}

func NewBondService(
	requestRepo BondRequestRepository,
	bondRepo BondRepository,
	profileRepo ProfileRepository,
	logger *zap.Logger,
) *BondService {
	return &BondService{
		requestRepo: requestRepo,
		bondRepo:    bondRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// RequestBond creates a pending request from a parent to the student whose
// full name or e-mail matches the search term exactly. Preconditions are
// checked in order: existing bond, pending request, previously denied
// request. A denied request is terminal; the parent cannot resubmit.
func (s *BondService) RequestBond(ctx context.Context, parentID uuid.UUID, searchTerm string) (*model.BondRequest, error) {
	child, err := s.profileRepo.FindStudentByExactNameOrEmail(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("find student: %w", err)
	}
	if child == nil || child.ID == parentID {
		return nil, ErrStudentNotFound
	}

	bonded, err := s.bondRepo.Exists(ctx, parentID, child.ID)
	if err != nil {
		return nil, fmt.Errorf("check bond: %w", err)
	}
	if bonded {
		return nil, ErrAlreadyBonded
	}

	existing, err := s.requestRepo.GetByPair(ctx, parentID, child.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing request: %w", err)
	}
	if existing != nil {
		switch {
		case existing.IsPending():
			return nil, ErrRequestPending
		case existing.IsDenied():
			return nil, ErrPreviouslyDenied
		case existing.IsApproved():
			// Approved request without a bond row: drift left by the old
			// two-step flow. Repair it instead of creating a duplicate.
			if err := s.bondRepo.Create(ctx, parentID, child.ID); err != nil {
				return nil, fmt.Errorf("repair bond: %w", err)
			}
			s.logger.Warn("Repaired approved request with missing bond",
				zap.String("request_id", existing.ID.String()),
			)
			return nil, ErrAlreadyBonded
		}
	}

	request := &model.BondRequest{
		ParentID: parentID,
		ChildID:  child.ID,
		Status:   model.BondStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("Bond request created",
		zap.String("parent_id", parentID.String()),
		zap.String("child_id", child.ID.String()),
		zap.String("request_id", request.ID.String()),
	)

	return request, nil
}

// PendingRequests lists a child's pending requests with parent names
// resolved through a single batched profile lookup. The child clears this
// queue on session start.
func (s *BondService) PendingRequests(ctx context.Context, childID uuid.UUID) ([]model.PendingBondRequest, error) {
	requests, err := s.requestRepo.GetPendingByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("get pending requests: %w", err)
	}
	if len(requests) == 0 {
		return []model.PendingBondRequest{}, nil
	}

	parentIDs := make([]uuid.UUID, 0, len(requests))
	seen := make(map[uuid.UUID]struct{}, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.ParentID]; ok {
			continue
		}
		seen[req.ParentID] = struct{}{}
		parentIDs = append(parentIDs, req.ParentID)
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("get parent profiles: %w", err)
	}
	names := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.DisplayName()
	}

	pending := make([]model.PendingBondRequest, 0, len(requests))
	for _, req := range requests {
		name, ok := names[req.ParentID]
		if !ok || name == "Unknown" {
			name = "Parent"
		}
		pending = append(pending, model.PendingBondRequest{
			ID:         req.ID,
			ParentID:   req.ParentID,
			ParentName: name,
			CreatedAt:  req.CreatedAt,
		})
	}

	return pending, nil
}

// ParentRequests lists every request a parent has sent, newest first, so the
// parent can see which invitations are still waiting or were denied.
func (s *BondService) ParentRequests(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error) {
	requests, err := s.requestRepo.GetByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("get parent requests: %w", err)
	}
	return requests, nil
}

// Approve transitions a pending request to approved and creates the bond in
// one transaction. Re-running approve on an already-approved request is not
// an error: it re-creates the bond if it is missing, so the operation can be
// used to repair drift.
func (s *BondService) Approve(ctx context.Context, childID, requestID uuid.UUID) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}
	if request == nil {
		return ErrRequestNotFound
	}
	if request.ChildID != childID {
		return ErrNotRequestOwner
	}

	if request.IsApproved() {
		// Idempotent repair: status already says approved, make sure the
		// bond row actually exists.
		if err := s.bondRepo.Create(ctx, request.ParentID, request.ChildID); err != nil {
			return fmt.Errorf("repair bond: %w", err)
		}
		return nil
	}
	if !request.IsPending() {
		return ErrRequestNotPending
	}

	if err := s.requestRepo.ApproveAndBond(ctx, requestID); err != nil {
		return fmt.Errorf("approve and bond: %w", err)
	}

	s.logger.Info("Bond request approved",
		zap.String("request_id", requestID.String()),
		zap.String("parent_id", request.ParentID.String()),
		zap.String("child_id", request.ChildID.String()),
	)

	return nil
}

// Deny transitions a pending request to denied. No bond is created and the
// parent is not notified.
func (s *BondService) Deny(ctx context.Context, childID, requestID uuid.UUID) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}
	if request == nil {
		return ErrRequestNotFound
	}
	if request.ChildID != childID {
		return ErrNotRequestOwner
	}
	if !request.IsPending() {
		return ErrRequestNotPending
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, model.BondStatusDenied); err != nil {
		return fmt.Errorf("deny request: %w", err)
	}

	s.logger.Info("Bond request denied",
		zap.String("request_id", requestID.String()),
		zap.String("child_id", childID.String()),
	)

	return nil
}

// BondedChildren lists the profiles of all children bonded to a parent.
func (s *BondService) BondedChildren(ctx context.Context, parentID uuid.UUID) ([]model.Profile, error) {
	childIDs, err := s.bondRepo.GetChildIDs(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("get bonded child ids: %w", err)
	}
	if len(childIDs) == 0 {
		return []model.Profile{}, nil
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("get child profiles: %w", err)
	}

	children := make([]model.Profile, 0, len(profiles))
	for _, p := range profiles {
		children = append(children, *p)
	}
	return children, nil
}
