package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// RatingService records lesson ratings and exposes per-student metrics with
// bond-based access control.
type RatingService struct {
	ratingRepo LessonRatingRepository
	roleRepo   RoleRepository
	bondRepo   BondRepository
	logger     *zap.Logger
}

func NewRatingService(
	ratingRepo LessonRatingRepository,
	roleRepo RoleRepository,
	bondRepo BondRepository,
	logger *zap.Logger,
) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		roleRepo:   roleRepo,
		bondRepo:   bondRepo,
		logger:     logger,
	}
}

// RatingInput is one lesson assessment across the five axes.
type RatingInput struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Focus     int       `json:"focus" validate:"required,min=1,max=5"`
	Skill     int       `json:"skill" validate:"required,min=1,max=5"`
	Revision  int       `json:"revision" validate:"required,min=1,max=5"`
	Attitude  int       `json:"attitude" validate:"required,min=1,max=5"`
	Potential int       `json:"potential" validate:"required,min=1,max=5"`
	Notes     string    `json:"notes"`
}

// RateStudent stores a lesson rating recorded by an admin.
func (s *RatingService) RateStudent(ctx context.Context, adminID uuid.UUID, input RatingInput) (*model.LessonRating, error) {
	for _, score := range []int{input.Focus, input.Skill, input.Revision, input.Attitude, input.Potential} {
		if score < model.RatingMin || score > model.RatingMax {
			return nil, ErrInvalidRating
		}
	}

	role, err := s.roleRepo.GetByUserID(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get student role: %w", err)
	}
	if role != model.RoleStudent {
		return nil, ErrStudentNotFound
	}

	rating := &model.LessonRating{
		StudentID: input.StudentID,
		AdminID:   &adminID,
		Focus:     input.Focus,
		Skill:     input.Skill,
		Revision:  input.Revision,
		Attitude:  input.Attitude,
		Potential: input.Potential,
		Notes:     input.Notes,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.logger.Info("Lesson rating recorded",
		zap.String("student_id", input.StudentID.String()),
		zap.String("admin_id", adminID.String()),
	)

	return rating, nil
}

// StudentRatings returns the student's rating history, newest first. Admins
// see any student, students see themselves, parents see bonded children.
func (s *RatingService) StudentRatings(ctx context.Context, actorID uuid.UUID, actorRole model.Role, studentID uuid.UUID) ([]*model.LessonRating, error) {
	if err := s.authorize(ctx, actorID, actorRole, studentID); err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get ratings: %w", err)
	}
	return ratings, nil
}

// StudentMetrics returns the per-axis averages, under the same access rules
// as StudentRatings.
func (s *RatingService) StudentMetrics(ctx context.Context, actorID uuid.UUID, actorRole model.Role, studentID uuid.UUID) (*model.StudentMetrics, error) {
	if err := s.authorize(ctx, actorID, actorRole, studentID); err != nil {
		return nil, err
	}

	metrics, err := s.ratingRepo.AverageByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get metrics: %w", err)
	}
	return metrics, nil
}

func (s *RatingService) authorize(ctx context.Context, actorID uuid.UUID, actorRole model.Role, studentID uuid.UUID) error {
	switch actorRole {
	case model.RoleAdmin:
		return nil
	case model.RoleStudent:
		if actorID == studentID {
			return nil
		}
		return ErrForbidden
	case model.RoleParent:
		bonded, err := s.bondRepo.Exists(ctx, actorID, studentID)
		if err != nil {
			return fmt.Errorf("check bond: %w", err)
		}
		if !bonded {
			return ErrNotBonded
		}
		return nil
	default:
		return ErrForbidden
	}
}
