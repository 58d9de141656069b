package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// TutorService maintains tutor profiles and serves the public directory.
type TutorService struct {
	tutorProfileRepo TutorProfileRepository
	profileRepo      ProfileRepository
	logger           *zap.Logger
}

func NewTutorService(
	tutorProfileRepo TutorProfileRepository,
	profileRepo ProfileRepository,
	logger *zap.Logger,
) *TutorService {
	return &TutorService{
		tutorProfileRepo: tutorProfileRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// TutorCard is one directory entry: display identity plus the tutor's
// declared subject and qualifications.
type TutorCard struct {
	UserID                 uuid.UUID `json:"user_id"`
	Name                   string    `json:"name"`
	Color                  string    `json:"color"`
	Letter                 string    `json:"letter"`
	Bio                    string    `json:"bio"`
	Subject                string    `json:"subject"`
	StandardQualifications []string  `json:"standard_qualifications"`
	CustomQualifications   []string  `json:"custom_qualifications"`
}

// TutorProfileInput is the tutor's own profile payload.
type TutorProfileInput struct {
	Bio                    string   `json:"bio" validate:"max=2000"`
	Subject                string   `json:"subject"`
	StandardQualifications []string `json:"standard_qualifications"`
	CustomQualifications   []string `json:"custom_qualifications"`
}

// Directory lists every tutor with a published profile.
func (s *TutorService) Directory(ctx context.Context) ([]TutorCard, error) {
	userIDs, err := s.tutorProfileRepo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutor ids: %w", err)
	}
	if len(userIDs) == 0 {
		return []TutorCard{}, nil
	}

	tutorProfiles, err := s.tutorProfileRepo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get tutor profiles: %w", err)
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	profileByID := make(map[uuid.UUID]*model.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	cards := make([]TutorCard, 0, len(tutorProfiles))
	for _, tp := range tutorProfiles {
		cards = append(cards, buildCard(tp, profileByID[tp.UserID]))
	}
	return cards, nil
}

// Get returns the directory card of one tutor.
func (s *TutorService) Get(ctx context.Context, userID uuid.UUID) (*TutorCard, error) {
	tp, err := s.tutorProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get tutor profile: %w", err)
	}
	if tp == nil {
		return nil, ErrTutorNotFound
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	card := buildCard(tp, profile)
	return &card, nil
}

// UpsertProfile publishes or updates the tutor's profile. Standard
// qualifications must come from the subject's catalogue.
func (s *TutorService) UpsertProfile(ctx context.Context, userID uuid.UUID, input TutorProfileInput) (*model.TutorProfile, error) {
	subject := strings.TrimSpace(input.Subject)
	for _, q := range input.StandardQualifications {
		if !isKnownQualification(subject, q) {
			return nil, ErrUnknownQualification
		}
	}

	custom := make([]string, 0, len(input.CustomQualifications))
	for _, q := range input.CustomQualifications {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			custom = append(custom, trimmed)
		}
	}

	tp := &model.TutorProfile{
		UserID:                 userID,
		Bio:                    strings.TrimSpace(input.Bio),
		Subject:                subject,
		StandardQualifications: input.StandardQualifications,
		CustomQualifications:   custom,
	}
	if err := s.tutorProfileRepo.Upsert(ctx, tp); err != nil {
		return nil, fmt.Errorf("upsert tutor profile: %w", err)
	}

	s.logger.Info("Tutor profile updated", zap.String("user_id", userID.String()))

	return tp, nil
}

func buildCard(tp *model.TutorProfile, profile *model.Profile) TutorCard {
	card := TutorCard{
		UserID:                 tp.UserID,
		Name:                   "Unknown",
		Color:                  model.DefaultAvatarColor,
		Bio:                    tp.Bio,
		Subject:                tp.Subject,
		StandardQualifications: tp.StandardQualifications,
		CustomQualifications:   tp.CustomQualifications,
	}
	if profile != nil {
		card.Name = profile.DisplayName()
		card.Color = profile.Color()
		card.Letter = profile.AvatarLetter
	}
	return card
}
