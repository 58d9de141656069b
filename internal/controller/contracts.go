package controller

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
	"github.com/YairBetsalel/tutor-path-finder/internal/service"
)

// Service contracts consumed by the handlers.

type AccountService interface {
	Register(ctx context.Context, input service.RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*service.AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type SessionService interface {
	Load(ctx context.Context, userID uuid.UUID) (*model.Session, error)
}

type CalendarService interface {
	MonthAvailability(ctx context.Context, year int, month time.Month) (model.MonthIndex, error)
	AddAvailability(ctx context.Context, tutorID uuid.UUID, date time.Time, inputs []service.SlotInput) ([]*model.AvailabilitySlot, error)
}

type BondService interface {
	RequestBond(ctx context.Context, parentID uuid.UUID, searchTerm string) (*model.BondRequest, error)
	PendingRequests(ctx context.Context, childID uuid.UUID) ([]model.PendingBondRequest, error)
	ParentRequests(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error)
	Approve(ctx context.Context, childID, requestID uuid.UUID) error
	Deny(ctx context.Context, childID, requestID uuid.UUID) error
	BondedChildren(ctx context.Context, parentID uuid.UUID) ([]model.Profile, error)
}

type TutorService interface {
	Directory(ctx context.Context) ([]service.TutorCard, error)
	Get(ctx context.Context, userID uuid.UUID) (*service.TutorCard, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input service.TutorProfileInput) (*model.TutorProfile, error)
}

type RatingService interface {
	RateStudent(ctx context.Context, adminID uuid.UUID, input service.RatingInput) (*model.LessonRating, error)
	StudentRatings(ctx context.Context, actorID uuid.UUID, actorRole model.Role, studentID uuid.UUID) ([]*model.LessonRating, error)
	StudentMetrics(ctx context.Context, actorID uuid.UUID, actorRole model.Role, studentID uuid.UUID) (*model.StudentMetrics, error)
}
