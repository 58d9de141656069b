package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

func slotOn(tutorID uuid.UUID, date string, start, end string) *model.AvailabilitySlot {
	d, _ := time.Parse(model.DateKeyLayout, date)
	return &model.AvailabilitySlot{
		ID:        uuid.New(),
		TutorID:   tutorID,
		Date:      d,
		StartTime: start,
		EndTime:   end,
	}
}

func newAvailabilityService(slots *fakeAvailabilityRepo, profiles *fakeProfileRepo, tutors *fakeTutorProfileRepo, rejectOverlap bool) *AvailabilityService {
	return NewAvailabilityService(slots, profiles, tutors, zap.NewNop(), rejectOverlap)
}

func TestMonthAvailabilityIndexesByDate(t *testing.T) {
	tutorA := uuid.New()
	tutorB := uuid.New()

	slotRepo := &fakeAvailabilityRepo{
		getByDateRange: func(_ context.Context, from, to time.Time) ([]*model.AvailabilitySlot, error) {
			if from.Day() != 1 || to.Month() != from.Month() {
				t.Fatalf("unexpected range %v..%v", from, to)
			}
			return []*model.AvailabilitySlot{
				slotOn(tutorA, "2025-03-10", "09:00", "10:00"),
				slotOn(tutorA, "2025-03-10", "14:00", "15:00"),
				slotOn(tutorB, "2025-03-21", "16:00", "17:30"),
			}, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		getByIDs: func(_ context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
			if len(ids) != 2 {
				t.Errorf("expected 2 distinct tutor ids, got %d", len(ids))
			}
			return []*model.Profile{
				{ID: tutorA, FirstName: "Dana", LastName: "Levi", AvatarColor: "#3366CC"},
				{ID: tutorB, FirstName: "Omer", LastName: "Katz", AvatarColor: "#CC3366"},
			}, nil
		},
	}
	tutorRepo := &fakeTutorProfileRepo{
		getByUserIDs: func(_ context.Context, _ []uuid.UUID) ([]*model.TutorProfile, error) {
			return []*model.TutorProfile{
				{UserID: tutorA, Bio: "Algebra and calculus", Subject: "Math"},
			}, nil
		},
	}

	svc := newAvailabilityService(slotRepo, profileRepo, tutorRepo, false)

	index, err := svc.MonthAvailability(context.Background(), 2025, time.March)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}

	if len(index) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(index))
	}
	if got := len(index["2025-03-10"]); got != 2 {
		t.Errorf("expected 2 slots on 2025-03-10, got %d", got)
	}
	if got := index["2025-03-10"][0].TutorName; got != "Dana Levi" {
		t.Errorf("tutor name = %q", got)
	}
	if got := index["2025-03-10"][0].TutorSubject; got != "Math" {
		t.Errorf("tutor subject = %q", got)
	}
	if got := index["2025-03-21"][0].TutorColor; got != "#CC3366" {
		t.Errorf("tutor color = %q", got)
	}

	if profileRepo.getByIDsCall != 1 {
		t.Errorf("profile batch lookups = %d, want 1", profileRepo.getByIDsCall)
	}
	if tutorRepo.getByUserIDsCall != 1 {
		t.Errorf("tutor profile batch lookups = %d, want 1", tutorRepo.getByUserIDsCall)
	}
}

func TestMonthAvailabilityEmptyMonthSkipsLookups(t *testing.T) {
	slotRepo := &fakeAvailabilityRepo{
		getByDateRange: func(context.Context, time.Time, time.Time) ([]*model.AvailabilitySlot, error) {
			return nil, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		getByIDs: func(context.Context, []uuid.UUID) ([]*model.Profile, error) {
			t.Error("profile lookup issued for empty month")
			return nil, nil
		},
	}
	tutorRepo := &fakeTutorProfileRepo{
		getByUserIDs: func(context.Context, []uuid.UUID) ([]*model.TutorProfile, error) {
			t.Error("tutor profile lookup issued for empty month")
			return nil, nil
		},
	}

	svc := newAvailabilityService(slotRepo, profileRepo, tutorRepo, false)

	index, err := svc.MonthAvailability(context.Background(), 2025, time.July)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}
	if len(index) != 0 {
		t.Errorf("expected empty index, got %d entries", len(index))
	}
}

func TestMonthAvailabilityMissingProfileFallsBack(t *testing.T) {
	tutorID := uuid.New()

	slotRepo := &fakeAvailabilityRepo{
		getByDateRange: func(context.Context, time.Time, time.Time) ([]*model.AvailabilitySlot, error) {
			return []*model.AvailabilitySlot{slotOn(tutorID, "2025-05-05", "10:00", "11:00")}, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		getByIDs: func(context.Context, []uuid.UUID) ([]*model.Profile, error) {
			return nil, nil
		},
	}
	tutorRepo := &fakeTutorProfileRepo{
		getByUserIDs: func(context.Context, []uuid.UUID) ([]*model.TutorProfile, error) {
			return nil, nil
		},
	}

	svc := newAvailabilityService(slotRepo, profileRepo, tutorRepo, false)

	index, err := svc.MonthAvailability(context.Background(), 2025, time.May)
	if err != nil {
		t.Fatalf("MonthAvailability: %v", err)
	}

	slot := index["2025-05-05"][0]
	if slot.TutorName != "Unknown" {
		t.Errorf("tutor name = %q, want Unknown", slot.TutorName)
	}
	if slot.TutorColor != model.DefaultAvatarColor {
		t.Errorf("tutor color = %q, want %q", slot.TutorColor, model.DefaultAvatarColor)
	}
}

func TestMonthAvailabilityDeterministic(t *testing.T) {
	tutorID := uuid.New()
	stored := []*model.AvailabilitySlot{
		slotOn(tutorID, "2025-04-01", "08:00", "09:00"),
		slotOn(tutorID, "2025-04-01", "12:00", "13:00"),
		slotOn(tutorID, "2025-04-15", "10:00", "11:00"),
	}

	slotRepo := &fakeAvailabilityRepo{
		getByDateRange: func(context.Context, time.Time, time.Time) ([]*model.AvailabilitySlot, error) {
			return stored, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		getByIDs: func(context.Context, []uuid.UUID) ([]*model.Profile, error) {
			return []*model.Profile{{ID: tutorID, FirstName: "Noa"}}, nil
		},
	}
	tutorRepo := &fakeTutorProfileRepo{
		getByUserIDs: func(context.Context, []uuid.UUID) ([]*model.TutorProfile, error) {
			return nil, nil
		},
	}

	svc := newAvailabilityService(slotRepo, profileRepo, tutorRepo, false)

	first, err := svc.MonthAvailability(context.Background(), 2025, time.April)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := svc.MonthAvailability(context.Background(), 2025, time.April)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two consecutive fetches produced different indexes")
	}
}

func TestMonthAvailabilityLookupFailureFailsWhole(t *testing.T) {
	tutorID := uuid.New()
	boom := errors.New("db down")

	slotRepo := &fakeAvailabilityRepo{
		getByDateRange: func(context.Context, time.Time, time.Time) ([]*model.AvailabilitySlot, error) {
			return []*model.AvailabilitySlot{slotOn(tutorID, "2025-06-06", "10:00", "11:00")}, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		getByIDs: func(context.Context, []uuid.UUID) ([]*model.Profile, error) {
			return nil, boom
		},
	}
	tutorRepo := &fakeTutorProfileRepo{
		getByUserIDs: func(context.Context, []uuid.UUID) ([]*model.TutorProfile, error) {
			return nil, nil
		},
	}

	svc := newAvailabilityService(slotRepo, profileRepo, tutorRepo, false)

	if _, err := svc.MonthAvailability(context.Background(), 2025, time.June); !errors.Is(err, boom) {
		t.Errorf("expected wrapped lookup error, got %v", err)
	}
}

func TestAddAvailabilityValidation(t *testing.T) {
	tutorID := uuid.New()
	fixedNow := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	svc := newAvailabilityService(&fakeAvailabilityRepo{}, &fakeProfileRepo{}, &fakeTutorProfileRepo{}, false)
	svc.now = func() time.Time { return fixedNow }

	tests := []struct {
		name  string
		date  time.Time
		slots []SlotInput
		want  error
	}{
		{
			name: "no slots",
			date: fixedNow,
			want: ErrNoSlots,
		},
		{
			name:  "past date",
			date:  fixedNow.AddDate(0, 0, -1),
			slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00"}},
			want:  ErrPastDate,
		},
		{
			name:  "bad time syntax",
			date:  fixedNow,
			slots: []SlotInput{{StartTime: "9am", EndTime: "10:00"}},
			want:  ErrInvalidTime,
		},
		{
			name:  "start not before end",
			date:  fixedNow,
			slots: []SlotInput{{StartTime: "10:00", EndTime: "10:00"}},
			want:  ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddAvailability(context.Background(), tutorID, tt.date, tt.slots)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddAvailabilityOverlapPolicy(t *testing.T) {
	tutorID := uuid.New()
	fixedNow := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	date := fixedNow.AddDate(0, 0, 1)

	existing := []*model.AvailabilitySlot{
		slotOn(tutorID, "2025-03-11", "09:00", "11:00"),
	}

	var created []*model.AvailabilitySlot
	slotRepo := &fakeAvailabilityRepo{
		getByTutorAndDate: func(context.Context, uuid.UUID, time.Time) ([]*model.AvailabilitySlot, error) {
			return existing, nil
		},
		createBatch: func(_ context.Context, slots []*model.AvailabilitySlot) error {
			created = slots
			return nil
		},
	}

	// Reject mode: an overlapping window fails the whole declaration.
	strict := newAvailabilityService(slotRepo, &fakeProfileRepo{}, &fakeTutorProfileRepo{}, true)
	strict.now = func() time.Time { return fixedNow }

	_, err := strict.AddAvailability(context.Background(), tutorID, date, []SlotInput{
		{StartTime: "10:00", EndTime: "12:00"},
	})
	if !errors.Is(err, ErrSlotOverlap) {
		t.Errorf("strict mode: got %v, want ErrSlotOverlap", err)
	}

	// Default mode tolerates the same overlap.
	tolerant := newAvailabilityService(slotRepo, &fakeProfileRepo{}, &fakeTutorProfileRepo{}, false)
	tolerant.now = func() time.Time { return fixedNow }

	slots, err := tolerant.AddAvailability(context.Background(), tutorID, date, []SlotInput{
		{StartTime: "10:00", EndTime: "12:00"},
	})
	if err != nil {
		t.Fatalf("tolerant mode: %v", err)
	}
	if len(slots) != 1 || len(created) != 1 {
		t.Errorf("expected 1 created slot, got %d", len(created))
	}
	if !created[0].Date.Equal(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("slot date not truncated to day: %v", created[0].Date)
	}
}
