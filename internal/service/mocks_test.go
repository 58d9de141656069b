package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// Func-field fakes for the repository contracts. Unset fields panic, which
// surfaces unexpected calls as test failures.

type fakeUserRepo struct {
	create     func(ctx context.Context, user *model.User) error
	getByID    func(ctx context.Context, id uuid.UUID) (*model.User, error)
	getByEmail func(ctx context.Context, email string) (*model.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	return f.create(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.getByID(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.getByEmail(ctx, email)
}

type fakeProfileRepo struct {
	create       func(ctx context.Context, profile *model.Profile) error
	getByID      func(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	getByIDs     func(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error)
	findStudent  func(ctx context.Context, term string) (*model.Profile, error)
	getByIDsCall int
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *model.Profile) error {
	return f.create(ctx, profile)
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return f.getByID(ctx, id)
}

func (f *fakeProfileRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	f.getByIDsCall++
	return f.getByIDs(ctx, ids)
}

func (f *fakeProfileRepo) FindStudentByExactNameOrEmail(ctx context.Context, term string) (*model.Profile, error) {
	return f.findStudent(ctx, term)
}

type fakeRoleRepo struct {
	assign      func(ctx context.Context, userID uuid.UUID, role model.Role) error
	getByUserID func(ctx context.Context, userID uuid.UUID) (model.Role, error)
}

func (f *fakeRoleRepo) Assign(ctx context.Context, userID uuid.UUID, role model.Role) error {
	return f.assign(ctx, userID, role)
}

func (f *fakeRoleRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Role, error) {
	return f.getByUserID(ctx, userID)
}

type fakeTutorProfileRepo struct {
	upsert         func(ctx context.Context, tp *model.TutorProfile) error
	getByUserID    func(ctx context.Context, userID uuid.UUID) (*model.TutorProfile, error)
	getByUserIDs   func(ctx context.Context, userIDs []uuid.UUID) ([]*model.TutorProfile, error)
	listUserIDs    func(ctx context.Context) ([]uuid.UUID, error)
	getByUserIDsCall int
}

func (f *fakeTutorProfileRepo) Upsert(ctx context.Context, tp *model.TutorProfile) error {
	return f.upsert(ctx, tp)
}

func (f *fakeTutorProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.TutorProfile, error) {
	return f.getByUserID(ctx, userID)
}

func (f *fakeTutorProfileRepo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*model.TutorProfile, error) {
	f.getByUserIDsCall++
	return f.getByUserIDs(ctx, userIDs)
}

func (f *fakeTutorProfileRepo) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.listUserIDs(ctx)
}

type fakeAvailabilityRepo struct {
	createBatch       func(ctx context.Context, slots []*model.AvailabilitySlot) error
	getByDateRange    func(ctx context.Context, from, to time.Time) ([]*model.AvailabilitySlot, error)
	getByTutorAndDate func(ctx context.Context, tutorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error)
}

func (f *fakeAvailabilityRepo) CreateBatch(ctx context.Context, slots []*model.AvailabilitySlot) error {
	return f.createBatch(ctx, slots)
}

func (f *fakeAvailabilityRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]*model.AvailabilitySlot, error) {
	return f.getByDateRange(ctx, from, to)
}

func (f *fakeAvailabilityRepo) GetByTutorAndDate(ctx context.Context, tutorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error) {
	return f.getByTutorAndDate(ctx, tutorID, date)
}

type fakeBondRequestRepo struct {
	create            func(ctx context.Context, req *model.BondRequest) error
	getByID           func(ctx context.Context, id uuid.UUID) (*model.BondRequest, error)
	getByPair         func(ctx context.Context, parentID, childID uuid.UUID) (*model.BondRequest, error)
	getPendingByChild func(ctx context.Context, childID uuid.UUID) ([]*model.BondRequest, error)
	getByParent       func(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error)
	updateStatus      func(ctx context.Context, id uuid.UUID, status string) error
	approveAndBond    func(ctx context.Context, requestID uuid.UUID) error
}

func (f *fakeBondRequestRepo) Create(ctx context.Context, req *model.BondRequest) error {
	return f.create(ctx, req)
}

func (f *fakeBondRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.BondRequest, error) {
	return f.getByID(ctx, id)
}

func (f *fakeBondRequestRepo) GetByPair(ctx context.Context, parentID, childID uuid.UUID) (*model.BondRequest, error) {
	return f.getByPair(ctx, parentID, childID)
}

func (f *fakeBondRequestRepo) GetPendingByChild(ctx context.Context, childID uuid.UUID) ([]*model.BondRequest, error) {
	return f.getPendingByChild(ctx, childID)
}

func (f *fakeBondRequestRepo) GetByParent(ctx context.Context, parentID uuid.UUID) ([]*model.BondRequest, error) {
	return f.getByParent(ctx, parentID)
}

func (f *fakeBondRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return f.updateStatus(ctx, id, status)
}

func (f *fakeBondRequestRepo) ApproveAndBond(ctx context.Context, requestID uuid.UUID) error {
	return f.approveAndBond(ctx, requestID)
}

type fakeBondRepo struct {
	exists      func(ctx context.Context, parentID, childID uuid.UUID) (bool, error)
	create      func(ctx context.Context, parentID, childID uuid.UUID) error
	getChildIDs func(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error)
}

func (f *fakeBondRepo) Exists(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	return f.exists(ctx, parentID, childID)
}

func (f *fakeBondRepo) Create(ctx context.Context, parentID, childID uuid.UUID) error {
	return f.create(ctx, parentID, childID)
}

func (f *fakeBondRepo) GetChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error) {
	return f.getChildIDs(ctx, parentID)
}

type fakeRatingRepo struct {
	create           func(ctx context.Context, rating *model.LessonRating) error
	getByStudent     func(ctx context.Context, studentID uuid.UUID) ([]*model.LessonRating, error)
	averageByStudent func(ctx context.Context, studentID uuid.UUID) (*model.StudentMetrics, error)
}

func (f *fakeRatingRepo) Create(ctx context.Context, rating *model.LessonRating) error {
	return f.create(ctx, rating)
}

func (f *fakeRatingRepo) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.LessonRating, error) {
	return f.getByStudent(ctx, studentID)
}

func (f *fakeRatingRepo) AverageByStudent(ctx context.Context, studentID uuid.UUID) (*model.StudentMetrics, error) {
	return f.averageByStudent(ctx, studentID)
}

type fakeRefreshRepo struct {
	create           func(ctx context.Context, session *model.RefreshSession) error
	getByTokenHash   func(ctx context.Context, tokenHash string) (*model.RefreshSession, error)
	revoke           func(ctx context.Context, id uuid.UUID, at time.Time) error
	revokeAllForUser func(ctx context.Context, userID uuid.UUID, at time.Time) error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, session *model.RefreshSession) error {
	return f.create(ctx, session)
}

func (f *fakeRefreshRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshSession, error) {
	return f.getByTokenHash(ctx, tokenHash)
}

func (f *fakeRefreshRepo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	return f.revoke(ctx, id, at)
}

func (f *fakeRefreshRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return f.revokeAllForUser(ctx, userID, at)
}
