package create_rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	itemRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/item"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	profileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/userprofile"
	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// --- стабы зависимостей ---

type stubRentalRepo struct {
	conflict     *domain.Rental
	conflictErr  error
	weeklyCount  int
	countErr     error
	createErr    error
	createCalled bool
	created      *domain.Rental
}

func (s *stubRentalRepo) Create(_ context.Context, rental *domain.Rental) (*domain.Rental, error) {
	s.createCalled = true
	if s.createErr != nil {
		return nil, s.createErr
	}
	rental.ID = 42
	rental.CreatedAt = time.Now()
	rental.UpdatedAt = rental.CreatedAt
	s.created = rental
	return rental, nil
}

func (s *stubRentalRepo) FindConflict(_ context.Context, _ int64, _ time.Time, _ domain.Period, _ domain.ClassSlot, _ *int64) (*domain.Rental, error) {
	return s.conflict, s.conflictErr
}

func (s *stubRentalRepo) CountByClientBetween(_ context.Context, _ int64, _, _ time.Time) (int, error) {
	return s.weeklyCount, s.countErr
}

type stubItemRepo struct {
	err error
}

func (s *stubItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Item{ID: id, Name: "Projetor", Available: true}, nil
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
	err     error
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, _ int64) (*domain.UserProfile, error) {
	if s.profile == nil && s.err == nil {
		return nil, profileRepo.ErrProfileNotFound
	}
	return s.profile, s.err
}

type stubAuth struct {
	user     *authservice.User
	err      error
	username string
}

func (s *stubAuth) GetUser(_ context.Context, _ int64) (*authservice.User, error) {
	return s.user, s.err
}

func (s *stubAuth) GetUsername(_ context.Context, _ int64) string {
	return s.username
}

type stubCalendar struct {
	today time.Time
}

func (c stubCalendar) Today() time.Time { return c.today }

func (c stubCalendar) WeekOf(d time.Time) (time.Time, time.Time) {
	start := calendar.Normalize(d).AddDate(0, 0, -calendar.ISOWeekday(d))
	return start, start.AddDate(0, 0, 6)
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingEvents struct {
	created []*domain.Rental
}

func (e *recordingEvents) RentalCreated(_ context.Context, rental *domain.Rental, _ int64) {
	e.created = append(e.created, rental)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- фикстура ---

type fixture struct {
	rentals    *stubRentalRepo
	items      *stubItemRepo
	exclusions *stubExclusions
	profiles   *stubProfileRepo
	auth       *stubAuth
	events     *recordingEvents
	uc         *UseCase
}

// today зафиксирован на понедельник 2 марта 2026
var (
	today      = calendar.Date(2026, 3, 2)
	futureDate = calendar.Date(2026, 3, 4)
)

func newFixture() *fixture {
	f := &fixture{
		rentals:    &stubRentalRepo{},
		items:      &stubItemRepo{},
		exclusions: &stubExclusions{},
		profiles:   &stubProfileRepo{},
		auth:       &stubAuth{user: &authservice.User{ID: 10, Username: "joao"}},
		events:     &recordingEvents{},
	}
	f.uc = NewUseCase(
		f.rentals,
		f.items,
		f.exclusions,
		f.profiles,
		f.auth,
		stubCalendar{today: today},
		inlineTxManager{},
		f.events,
		domain.DefaultWeeklyQuota,
		nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		ActorID:   10,
		ItemID:    7,
		Date:      futureDate,
		Period:    domain.PeriodMatutino,
		ClassSlot: domain.ClassSlot2,
		Room:      "Sala 12",
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(10), resp.ClientID)
	assert.Equal(t, "Sala 12", resp.Room)
	require.Len(t, f.events.created, 1)
	assert.Equal(t, int64(42), f.events.created[0].ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive actor", func(r *Request) { r.ActorID = 0 }},
		{"non-positive item", func(r *Request) { r.ItemID = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"unknown period", func(r *Request) { r.Period = "noturno" }},
		{"unknown class slot", func(r *Request) { r.ClassSlot = "6 aula" }},
		{"non-positive client", func(r *Request) { id := int64(0); r.ClientID = &id }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ActorNotFound(t *testing.T) {
	f := newFixture()
	f.auth.user = nil
	f.auth.err = authservice.ErrUserNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestExecute_AssignClientRequiresPrivilege(t *testing.T) {
	f := newFixture()

	req := validRequest()
	other := int64(55)
	req.ClientID = &other

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, f.rentals.createCalled)
}

func TestExecute_AssignSelfIsAlwaysAllowed(t *testing.T) {
	f := newFixture()

	req := validRequest()
	self := req.ActorID
	req.ClientID = &self

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.ActorID, resp.ClientID)
}

func TestExecute_SuperuserAssignsArbitraryClient(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}

	req := validRequest()
	other := int64(55)
	req.ClientID = &other

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, other, resp.ClientID)
}

func TestExecute_ItemNotFound(t *testing.T) {
	f := newFixture()
	f.items.err = itemRepo.ErrItemNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestExecute_ExclusionBlocked(t *testing.T) {
	f := newFixture()
	f.exclusions.matched = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrExclusionBlocked)
	assert.False(t, f.rentals.createCalled)
}

func TestExecute_ExclusionAppliesToSuperuser(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}
	f.exclusions.matched = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrExclusionBlocked)
}

func TestExecute_ExclusionCheckedBeforeDate(t *testing.T) {
	// Первый отказ в чэйне выигрывает: просроченная дата
	// не скрывает блокировку слота
	f := newFixture()
	f.exclusions.matched = true

	req := validRequest()
	req.Date = today.AddDate(0, 0, -7)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrExclusionBlocked)
}

func TestExecute_DateMustBeAfterToday(t *testing.T) {
	f := newFixture()

	for _, date := range []time.Time{today, today.AddDate(0, 0, -1)} {
		req := validRequest()
		req.Date = date

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastOrTodayDate)
	}
}

func TestExecute_SuperuserBypassesDateRule(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}

	req := validRequest()
	req.Date = today

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_QuotaExceeded(t *testing.T) {
	f := newFixture()
	f.rentals.weeklyCount = domain.DefaultWeeklyQuota

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.False(t, f.rentals.createCalled)
}

func TestExecute_QuotaBelowLimitPasses(t *testing.T) {
	f := newFixture()
	f.rentals.weeklyCount = domain.DefaultWeeklyQuota - 1

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ProfileOverridesQuota(t *testing.T) {
	f := newFixture()
	override := 2
	f.profiles.profile = &domain.UserProfile{UserID: 10, WeeklyQuota: &override}
	f.rentals.weeklyCount = 2

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestExecute_SuperuserBypassesQuota(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}
	f.rentals.weeklyCount = domain.DefaultWeeklyQuota + 10

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.rentals.conflict = &domain.Rental{ID: 99, ItemID: 7, ClientID: 55}
	f.auth.username = "maria"

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *SlotConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(99), conflictErr.Conflicting.ID)
	assert.Equal(t, "maria", conflictErr.OwnerUsername)
	assert.False(t, f.rentals.createCalled)
}

func TestExecute_ConflictAppliesToSuperuser(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}
	f.rentals.conflict = &domain.Rental{ID: 99, ItemID: 7, ClientID: 55}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Уникальный индекс сработал между проверкой конфликта и вставкой
	f := newFixture()
	f.rentals.createErr = rentalRepo.ErrDuplicateSlot

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, f.events.created)
}

func TestExecute_NoEventOnFailure(t *testing.T) {
	f := newFixture()
	f.exclusions.matched = true

	_, _ = f.uc.Execute(context.Background(), validRequest())
	assert.Empty(t, f.events.created)
}

func TestExecute_ExclusionLookupFailure(t *testing.T) {
	f := newFixture()
	f.exclusions.err = errors.New("db down")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
