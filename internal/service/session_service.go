package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// SessionService assembles the authenticated actor's full session in one
// load: identity, profile, role and the role-specific extras.
type SessionService struct {
	userRepo         UserRepository
	profileRepo      ProfileRepository
	roleRepo         RoleRepository
	tutorProfileRepo TutorProfileRepository
	bondRepo         BondRepository
	ratingRepo       LessonRatingRepository
	logger           *zap.Logger
	now              func() time.Time
}

func NewSessionService(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	roleRepo RoleRepository,
	tutorProfileRepo TutorProfileRepository,
	bondRepo BondRepository,
	ratingRepo LessonRatingRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		roleRepo:         roleRepo,
		tutorProfileRepo: tutorProfileRepo,
		bondRepo:         bondRepo,
		ratingRepo:       ratingRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Load builds the session snapshot for the account. Students get their
// rating metrics, parents their bonded children, tutors their tutor profile.
func (s *SessionService) Load(ctx context.Context, userID uuid.UUID) (*model.Session, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	role, err := s.roleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}

	session := &model.Session{
		UserID:   userID,
		Email:    user.Email,
		Role:     role,
		Profile:  *profile,
		LoadedAt: s.now().UTC(),
	}

	switch role {
	case model.RoleStudent:
		metrics, err := s.ratingRepo.AverageByStudent(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get student metrics: %w", err)
		}
		session.Metrics = metrics
	case model.RoleParent:
		children, err := s.loadChildren(ctx, userID)
		if err != nil {
			return nil, err
		}
		session.Children = children
	case model.RoleTutor:
		tutor, err := s.tutorProfileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get tutor profile: %w", err)
		}
		session.Tutor = tutor
	}

	return session, nil
}

func (s *SessionService) loadChildren(ctx context.Context, parentID uuid.UUID) ([]model.Profile, error) {
	childIDs, err := s.bondRepo.GetChildIDs(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("get child ids: %w", err)
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
