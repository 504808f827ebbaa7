package preflight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	profileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/userprofile"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type stubRentalRepo struct {
	conflict    *domain.Rental
	conflictErr error
	weeklyCount int
	countErr    error
	gotFrom     time.Time
	gotTo       time.Time
}

func (s *stubRentalRepo) FindConflict(_ context.Context, _ int64, _ time.Time, _ domain.Period, _ domain.ClassSlot, _ *int64) (*domain.Rental, error) {
	return s.conflict, s.conflictErr
}

func (s *stubRentalRepo) CountByClientBetween(_ context.Context, _ int64, from, to time.Time) (int, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.weeklyCount, s.countErr
}

type stubExclusions struct {
	matched bool
	err     error
}

func (s *stubExclusions) Matches(_ context.Context, _ int64, _ int, _ domain.Period, _ domain.ClassSlot) (bool, error) {
	return s.matched, s.err
}

type stubProfileRepo struct {
	profile *domain.UserProfile
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, _ int64) (*domain.UserProfile, error) {
	if s.profile == nil {
		return nil, profileRepo.ErrProfileNotFound
	}
	return s.profile, nil
}

type stubAuth struct {
	username string
}

func (s *stubAuth) GetUsername(_ context.Context, _ int64) string {
	return s.username
}

type stubCalendar struct{}

func (stubCalendar) WeekOf(d time.Time) (time.Time, time.Time) {
	start := calendar.Normalize(d).AddDate(0, 0, -calendar.ISOWeekday(d))
	return start, start.AddDate(0, 0, 6)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	rentals    *stubRentalRepo
	exclusions *stubExclusions
	profiles   *stubProfileRepo
	auth       *stubAuth
	svc        *Service
}

func newFixture() *fixture {
	f := &fixture{
		rentals:    &stubRentalRepo{},
		exclusions: &stubExclusions{},
		profiles:   &stubProfileRepo{},
		auth:       &stubAuth{username: "maria"},
	}
	f.svc = NewService(
		f.rentals,
		f.exclusions,
		f.profiles,
		f.auth,
		stubCalendar{},
		domain.DefaultWeeklyQuota,
		nopLogger{},
	)
	return f
}

var futureDate = calendar.Date(2026, 3, 4)

func TestCheckConflict_Free(t *testing.T) {
	f := newFixture()

	result, err := f.svc.CheckConflict(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	require.NoError(t, err)
	assert.False(t, result.HasConflict())
}

func TestCheckConflict_Taken(t *testing.T) {
	f := newFixture()
	f.rentals.conflict = &domain.Rental{ID: 99, ClientID: 55}

	result, err := f.svc.CheckConflict(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	require.NoError(t, err)
	assert.True(t, result.HasConflict())
	assert.Equal(t, int64(99), result.Conflicting.ID)
	assert.Equal(t, "maria", result.OwnerUsername)
}

func TestCheckQuota_CountsWeekOfDate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CheckQuota(context.Background(), 10, futureDate)
	require.NoError(t, err)

	// Квота считается в неделе выбранной даты: понедельник..воскресенье
	assert.Equal(t, calendar.Date(2026, 3, 2), f.rentals.gotFrom)
	assert.Equal(t, calendar.Date(2026, 3, 8), f.rentals.gotTo)
}

func TestCheckQuota_Thresholds(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		override     *int
		wantExceeded bool
	}{
		{name: "below default quota", count: domain.DefaultWeeklyQuota - 1, wantExceeded: false},
		{name: "at default quota", count: domain.DefaultWeeklyQuota, wantExceeded: true},
		{name: "profile override lowers quota", count: 2, override: ptr.Ptr(2), wantExceeded: true},
		{name: "profile override raises quota", count: domain.DefaultWeeklyQuota, override: ptr.Ptr(20), wantExceeded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.rentals.weeklyCount = tt.count
			if tt.override != nil {
				f.profiles.profile = &domain.UserProfile{UserID: 10, WeeklyQuota: tt.override}
			}

			exceeded, err := f.svc.CheckQuota(context.Background(), 10, futureDate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExceeded, exceeded)
		})
	}
}

func TestCheckAvailability_Free(t *testing.T) {
	f := newFixture()

	result, err := f.svc.CheckAvailability(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Reason)
}

func TestCheckAvailability_Excluded(t *testing.T) {
	f := newFixture()
	f.exclusions.matched = true
	// Конфликт не должен перекрыть причину "excluded"
	f.rentals.conflict = &domain.Rental{ID: 99}

	result, err := f.svc.CheckAvailability(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonExcluded, result.Reason)
	assert.Nil(t, result.Conflict)
}

func TestCheckAvailability_Conflict(t *testing.T) {
	f := newFixture()
	f.rentals.conflict = &domain.Rental{ID: 99, ClientID: 55}

	result, err := f.svc.CheckAvailability(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonConflict, result.Reason)
	require.NotNil(t, result.Conflict)
	assert.Equal(t, "maria", result.Conflict.OwnerUsername)
}

func TestCheckAvailability_LookupError(t *testing.T) {
	f := newFixture()
	f.exclusions.err = errors.New("db down")

	_, err := f.svc.CheckAvailability(context.Background(), 7, futureDate, domain.PeriodMatutino, domain.ClassSlot1)
	assert.ErrorIs(t, err, ErrInternal)
}
