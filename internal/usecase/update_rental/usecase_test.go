package update_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
)

// --- стабы зависимостей ---

type stubRentalRepo struct {
	current       *domain.Rental
	getErr        error
	conflict      *domain.Rental
	conflictErr   error
	updateErr     error
	updateCalled  bool
	updatedRental *domain.Rental
	gotExcludeID  *int64
}

func (s *stubRentalRepo) GetByID(_ context.Context, _ int64) (*domain.Rental, error) {
	return s.current, s.getErr
}

func (s *stubRentalRepo) Update(_ context.Context, rental *domain.Rental) error {
	s.updateCalled = true
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedRental = rental
	return nil
}

func (s *stubRentalRepo) FindConflict(_ context.Context, _ int64, _ time.Time, _ domain.Period, _ domain.ClassSlot, excludeID *int64) (*domain.Rental, error) {
	s.gotExcludeID = excludeID
	return s.conflict, s.conflictErr
}

type stubItemRepo struct {
	err error
}

func (s *stubItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Item{ID: id, Name: "Laboratorio", Available: true}, nil
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

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingEvents struct {
	updated []*domain.Rental
}

func (e *recordingEvents) RentalUpdated(_ context.Context, rental *domain.Rental, _ int64) {
	e.updated = append(e.updated, rental)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- фикстура ---

var (
	today      = calendar.Date(2026, 3, 2)
	futureDate = calendar.Date(2026, 3, 4)
)

type fixture struct {
	rentals *stubRentalRepo
	items   *stubItemRepo
	auth    *stubAuth
	events  *recordingEvents
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		rentals: &stubRentalRepo{
			current: &domain.Rental{
				ID:        5,
				ItemID:    7,
				Date:      calendar.Date(2026, 3, 3),
				Period:    domain.PeriodMatutino,
				ClassSlot: domain.ClassSlot1,
				ClientID:  10,
			},
		},
		items:  &stubItemRepo{},
		auth:   &stubAuth{user: &authservice.User{ID: 10, Username: "joao"}},
		events: &recordingEvents{},
	}
	f.uc = NewUseCase(
		f.rentals,
		f.items,
		f.auth,
		stubCalendar{today: today},
		inlineTxManager{},
		f.events,
		nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		RentalID:  5,
		ActorID:   10,
		ItemID:    7,
		Date:      futureDate,
		Period:    domain.PeriodVespertino,
		ClassSlot: domain.ClassSlot3,
		Room:      "Sala 8",
	}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, domain.PeriodVespertino, resp.Period)
	assert.Equal(t, domain.ClassSlot3, resp.ClassSlot)
	assert.Equal(t, "Sala 8", resp.Room)
	assert.Equal(t, "Laboratorio", resp.ItemName)
	require.Len(t, f.events.updated, 1)
}

func TestExecute_ExcludesSelfFromConflictCheck(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Запись не должна конфликтовать сама с собой
	require.NotNil(t, f.rentals.gotExcludeID)
	assert.Equal(t, int64(5), *f.rentals.gotExcludeID)
}

func TestExecute_RentalNotFound(t *testing.T) {
	f := newFixture()
	f.rentals.current = nil
	f.rentals.getErr = rentalRepo.ErrRentalNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRentalNotFound)
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
}

func TestExecute_SuperuserReassignsClient(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}

	req := validRequest()
	other := int64(55)
	req.ClientID = &other

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, other, resp.ClientID)
}

func TestExecute_DateMustBeAfterToday(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = today

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastOrTodayDate)
	assert.False(t, f.rentals.updateCalled)
}

func TestExecute_SuperuserBypassesDateRule(t *testing.T) {
	f := newFixture()
	f.auth.user = &authservice.User{ID: 10, Username: "admin", IsSuperuser: true}

	req := validRequest()
	req.Date = today.AddDate(0, 0, -14)

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DuplicateSlot(t *testing.T) {
	f := newFixture()
	f.rentals.conflict = &domain.Rental{ID: 77, ItemID: 7, ClientID: 55}
	f.auth.username = "maria"

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	var dupErr *DuplicateSlotError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, int64(77), dupErr.Conflicting.ID)
	assert.Equal(t, "maria", dupErr.OwnerUsername)
	assert.False(t, f.rentals.updateCalled)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	f := newFixture()
	f.rentals.updateErr = rentalRepo.ErrDuplicateSlot

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.Empty(t, f.events.updated)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Period = "noturno"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
