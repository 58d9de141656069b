package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// AvailabilityService aggregates tutor availability into month views and
// records new slot declarations.
type AvailabilityService struct {
	slotRepo         AvailabilityRepository
	profileRepo      ProfileRepository
	tutorProfileRepo TutorProfileRepository
	logger           *zap.Logger
	now              func() time.Time
	rejectOverlap    bool
}

func NewAvailabilityService(
	slotRepo AvailabilityRepository,
	profileRepo ProfileRepository,
	tutorProfileRepo TutorProfileRepository,
	logger *zap.Logger,
	rejectOverlap bool,
) *AvailabilityService {
	return &AvailabilityService{
		slotRepo:         slotRepo,
		profileRepo:      profileRepo,
		tutorProfileRepo: tutorProfileRepo,
		logger:           logger,
		now:              time.Now,
		rejectOverlap:    rejectOverlap,
	}
}

// tutorDisplay is the merged display metadata attached to a tutor's slots.
type tutorDisplay struct {
	name    string
	color   string
	bio     string
	subject string
}

// MonthAvailability builds the date-keyed index for one month: one range
// query for the slots, then two batched lookups for the owners' display
// metadata. Aggregation is all-or-nothing; any failed query fails the whole
// request and the caller retries by asking again.
func (s *AvailabilityService) MonthAvailability(ctx context.Context, year int, month time.Month) (model.MonthIndex, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	slots, err := s.slotRepo.GetByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch slots: %w", err)
	}

	// Nothing declared this month: skip the identity lookups entirely.
	if len(slots) == 0 {
		return model.MonthIndex{}, nil
	}

	tutorIDs := distinctTutorIDs(slots)

	// The two batch lookups are independent, so they run concurrently.
	var (
		profiles      []*model.Profile
		tutorProfiles []*model.TutorProfile
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		profiles, err = s.profileRepo.GetByIDs(egCtx, tutorIDs)
		return err
	})
	eg.Go(func() error {
		var err error
		tutorProfiles, err = s.tutorProfileRepo.GetByUserIDs(egCtx, tutorIDs)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("fetch tutor metadata: %w", err)
	}

	display := mergeDisplayMetadata(profiles, tutorProfiles)

	index := make(model.MonthIndex)
	for _, slot := range slots {
		meta, ok := display[slot.TutorID]
		if !ok {
			meta = tutorDisplay{name: "Unknown", color: model.DefaultAvatarColor}
		}
		key := slot.DateKey()
		index[key] = append(index[key], model.TutorSlot{
			AvailabilitySlot: *slot,
			TutorName:        meta.name,
			TutorColor:       meta.color,
			TutorBio:         meta.bio,
			TutorSubject:     meta.subject,
		})
	}

	return index, nil
}

// SlotInput is one declared time window of a batch declaration.
type SlotInput struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// AddAvailability records a tutor's slots for one date in a single batch.
// Past dates are rejected; overlapping declarations are rejected only when
// the overlap policy says so, otherwise they are tolerated for display.
func (s *AvailabilityService) AddAvailability(ctx context.Context, tutorID uuid.UUID, date time.Time, inputs []SlotInput) ([]*model.AvailabilitySlot, error) {
	if len(inputs) == 0 {
		return nil, ErrNoSlots
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return nil, ErrPastDate
	}

	for _, in := range inputs {
		if err := validateWindow(in.StartTime, in.EndTime); err != nil {
			return nil, err
		}
	}

	if s.rejectOverlap {
		existing, err := s.slotRepo.GetByTutorAndDate(ctx, tutorID, day)
		if err != nil {
			return nil, fmt.Errorf("fetch existing slots: %w", err)
		}
		if hasOverlap(inputs, existing) {
			return nil, ErrSlotOverlap
		}
	}

	slots := make([]*model.AvailabilitySlot, 0, len(inputs))
	for _, in := range inputs {
		slots = append(slots, &model.AvailabilitySlot{
			TutorID:   tutorID,
			Date:      day,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	if err := s.slotRepo.CreateBatch(ctx, slots); err != nil {
		return nil, fmt.Errorf("create slots: %w", err)
	}

	s.logger.Info("Availability declared",
		zap.String("tutor_id", tutorID.String()),
		zap.String("date", day.Format(model.DateKeyLayout)),
		zap.Int("slots", len(slots)),
	)

	return slots, nil
}

// distinctTutorIDs collects the unique owner ids in first-seen order.
func distinctTutorIDs(slots []*model.AvailabilitySlot) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(slots))
	var ids []uuid.UUID
	for _, slot := range slots {
		if _, ok := seen[slot.TutorID]; ok {
			continue
		}
		seen[slot.TutorID] = struct{}{}
		ids = append(ids, slot.TutorID)
	}
	return ids
}

// mergeDisplayMetadata joins basic and extended tutor profiles into the
// per-owner display map, applying the name and color fallbacks.
func mergeDisplayMetadata(profiles []*model.Profile, tutorProfiles []*model.TutorProfile) map[uuid.UUID]tutorDisplay {
	extended := make(map[uuid.UUID]*model.TutorProfile, len(tutorProfiles))
	for _, tp := range tutorProfiles {
		extended[tp.UserID] = tp
	}

	display := make(map[uuid.UUID]tutorDisplay, len(profiles))
	for _, p := range profiles {
		meta := tutorDisplay{
			name:  p.DisplayName(),
			color: p.Color(),
		}
		if tp, ok := extended[p.ID]; ok {
			meta.bio = tp.Bio
			meta.subject = tp.Subject
		}
		display[p.ID] = meta
	}
	return display
}

// validateWindow checks HH:MM syntax and start < end.
func validateWindow(start, end string) error {
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return ErrInvalidTime
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return ErrInvalidTime
	}
	if !startT.Before(endT) {
		return ErrInvalidTimeRange
	}
	return nil
}

// hasOverlap reports whether any new window overlaps an existing slot or
// another new window. HH:MM strings compare correctly lexicographically.
func hasOverlap(inputs []SlotInput, existing []*model.AvailabilitySlot) bool {
	type window struct{ start, end string }
	windows := make([]window, 0, len(existing)+len(inputs))
	for _, slot := range existing {
		windows = append(windows, window{slot.StartTime, slot.EndTime})
	}
	for _, in := range inputs {
		for _, w := range windows {
			if in.StartTime < w.end && w.start < in.EndTime {
				return true
			}
		}
		windows = append(windows, window{in.StartTime, in.EndTime})
	}
	return false
}
