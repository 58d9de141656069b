package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// Repository contracts consumed by the services. Batch reads are part of the
// interface shape on purpose: callers cannot fall back to per-id queries.

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error)
	FindStudentByExactNameOrEmail(ctx context.Context, term string) (*model.Profile, error)
}

type RoleRepository interface {
	Assign(ctx context.Context, userID uuid.UUID, role model.Role) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (model.Role, error)
}

type TutorProfileRepository interface {
	Upsert(ctx context.Context, tp *model.TutorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.TutorProfile, error)
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*model.TutorProfile, error)
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type AvailabilityRepository interface {
	CreateBatch(ctx context.Context, slots []*model.AvailabilitySlot) error
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*model.AvailabilitySlot, error)
	GetByTutorAndDate(ctx context.Context, tutorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error)
}

type BondRequestRepository interface {
	Create(ctx context.Context, req *model.BondRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.BondRequest, error)
	GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*model.BondRequest, error)
	GetPendingByChild(ctx context.Context, childID uuid.UUID) ([]*model.BondRequest, error)
	GetByParent(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ApproveAndBond(ctx context.Context, requestID uuid.UUID) error
}

type BondRepository interface {
	Exists(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	Create(ctx context.Context, parentID, childID uuid.UUID) error
	GetChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error)
}

type LessonRatingRepository interface {
	Create(ctx context.Context, rating *model.LessonRating) error
	GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.LessonRating, error)
	AverageByStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentMetrics, error)
}

type RefreshSessionRepository interface {
	Create(ctx context.Context, session *model.RefreshSession) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshSession, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) error
}
