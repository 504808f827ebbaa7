package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type stubProfileRepo struct {
	upserted *domain.UserProfile
	err      error
}

func (s *stubProfileRepo) Upsert(_ context.Context, profile *domain.UserProfile) error {
	s.upserted = profile
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSetQuota_Override(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := NewService(repo, nopLogger{})

	profile, err := svc.SetQuota(context.Background(), 42, ptr.Ptr(3))
	require.NoError(t, err)

	assert.Equal(t, int64(42), profile.UserID)
	require.NotNil(t, profile.WeeklyQuota)
	assert.Equal(t, 3, *profile.WeeklyQuota)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(42), repo.upserted.UserID)
}

func TestSetQuota_ResetToDefault(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := NewService(repo, nopLogger{})

	profile, err := svc.SetQuota(context.Background(), 42, nil)
	require.NoError(t, err)

	assert.Nil(t, profile.WeeklyQuota)
	require.NotNil(t, repo.upserted)
	assert.Nil(t, repo.upserted.WeeklyQuota)
}

func TestSetQuota_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		quota  *int
	}{
		{"zero user id", 0, ptr.Ptr(3)},
		{"negative user id", -1, ptr.Ptr(3)},
		{"zero quota", 42, ptr.Ptr(0)},
		{"negative quota", 42, ptr.Ptr(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubProfileRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.SetQuota(context.Background(), tt.userID, tt.quota)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestSetQuota_RepositoryError(t *testing.T) {
	repo := &stubProfileRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.SetQuota(context.Background(), 42, ptr.Ptr(3))
	assert.ErrorIs(t, err, ErrInternal)
}
