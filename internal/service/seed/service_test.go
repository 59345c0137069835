package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/seed"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/brilliantafrica/attendance-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// recordingTx discards the writes of a failed unit of work.
type recordingTx struct {
	committed bool
}

func (r *recordingTx) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	r.committed = true
	return nil
}

type fakeSeedRepository struct {
	hasData    bool
	resets     int
	attendance []attendance.Attendance
	leaves     []leave.Leave
	schedules  int
	failCopy   error
}

func (f *fakeSeedRepository) HasData(ctx context.Context) (bool, error) { return f.hasData, nil }

func (f *fakeSeedRepository) Reset(ctx context.Context) error {
	f.resets++
	return nil
}

func (f *fakeSeedRepository) InsertDepartments(ctx context.Context, d []department.Department) error {
	return nil
}

func (f *fakeSeedRepository) InsertEmployees(ctx context.Context, e []employee.Employee) ([]int64, error) {
	ids := make([]int64, len(e))
	for i := range e {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func (f *fakeSeedRepository) InsertHolidays(ctx context.Context, h []holiday.Holiday) error {
	return nil
}

func (f *fakeSeedRepository) CopyWorkSchedules(ctx context.Context, s []schedule.WorkSchedule) (int64, error) {
	f.schedules = len(s)
	return int64(len(s)), nil
}

func (f *fakeSeedRepository) CopyAttendance(ctx context.Context, rows []attendance.Attendance) (int64, error) {
	if f.failCopy != nil {
		return 0, f.failCopy
	}
	f.attendance = rows
	return int64(len(rows)), nil
}

func (f *fakeSeedRepository) CopyLeaves(ctx context.Context, l []leave.Leave) (int64, error) {
	f.leaves = l
	return int64(len(l)), nil
}

func (f *fakeSeedRepository) FlagHolidays(ctx context.Context) (int64, error) { return 0, nil }

type fakeUserRepository struct {
	user.UserRepository
	created []user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	f.created = append(f.created, u)
	return u, nil
}

func newTestSeedService(repo *fakeSeedRepository, users *fakeUserRepository, tx *recordingTx) *SeedServiceImpl {
	svc := NewSeedService(tx, repo, users, attendance.DefaultPolicy()).(*SeedServiceImpl)
	svc.cost = bcrypt.MinCost
	return svc
}

func TestSeedService_Run(t *testing.T) {
	repo := &fakeSeedRepository{}
	users := &fakeUserRepository{}
	tx := &recordingTx{}
	svc := newTestSeedService(repo, users, tx)

	now := time.Date(2025, 7, 21, 10, 0, 0, 0, time.UTC)
	res, err := svc.Run(context.Background(), seed.Options{Now: now, RandomSeed: 42})
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, res.Skipped)

	assert.Equal(t, "2025-05-01", res.From.Format("2006-01-02"))
	assert.Equal(t, "2025-08-31", res.To.Format("2006-01-02"))
	assert.Equal(t, len(fixtures.Employees), res.Employees)
	assert.Equal(t, 5*len(fixtures.Employees), repo.schedules)
	assert.Equal(t, int64(len(repo.attendance)), res.AttendanceRows)
	assert.Equal(t, 123*len(fixtures.Employees), len(repo.attendance))

	require.Len(t, users.created, 1)
	admin := users.created[0]
	assert.Equal(t, "fred@gmail.com", admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(fixtures.AdminPassword)))
}

func TestSeedService_SkipsExistingData(t *testing.T) {
	repo := &fakeSeedRepository{hasData: true}
	users := &fakeUserRepository{}
	svc := newTestSeedService(repo, users, &recordingTx{})

	res, err := svc.Run(context.Background(), seed.Options{RandomSeed: 1})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Empty(t, users.created)
	assert.Empty(t, repo.attendance)
}

func TestSeedService_ResetReseeds(t *testing.T) {
	repo := &fakeSeedRepository{hasData: true}
	svc := newTestSeedService(repo, &fakeUserRepository{}, &recordingTx{})

	res, err := svc.Run(context.Background(), seed.Options{Reset: true, RandomSeed: 1})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 1, repo.resets)
	assert.NotEmpty(t, repo.attendance)
}

func TestSeedService_FailureRollsBack(t *testing.T) {
	repo := &fakeSeedRepository{failCopy: errors.New("copy failed")}
	tx := &recordingTx{}
	svc := newTestSeedService(repo, &fakeUserRepository{}, tx)

	_, err := svc.Run(context.Background(), seed.Options{RandomSeed: 1})
	assert.ErrorContains(t, err, "copy failed")
	assert.False(t, tx.committed)
}
