package users

import (
	"context"
	"testing"
	"time"

	"animal-shelter/internal/platform/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(_ context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Update(_ context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return apperror.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperror.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(_ context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, apperror.ErrNotFound
}

func newTestService() *Service {
	svc := NewService(newTestRepo())
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}

func strPtr(s string) *string { return &s }

func TestService_Register(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: " yuri ", PhoneNumber: " +380933456789 "})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "yuri", u.Username)
	assert.Equal(t, "+380933456789", u.PhoneNumber)
	assert.True(t, u.HasContactInfo())
	assert.False(t, u.IsStaff)
	assert.Equal(t, svc.now(), u.CreatedAt)

	_, err = svc.Register(ctx, RegisterInput{Username: "yuri"})
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)

	_, err = svc.Register(ctx, RegisterInput{Username: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)
}

func TestService_UpdateProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Register(ctx, RegisterInput{Username: "ana"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Username: "bob"})
	require.NoError(t, err)
	assert.False(t, a.HasContactInfo())

	got, err := svc.UpdateProfile(ctx, a.ID, UpdateProfileInput{PhoneNumber: strPtr("+15550001111"), FirstName: strPtr(" Ana ")})
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", got.PhoneNumber)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "ana", got.Username)

	// mismo username propio: no es conflicto
	_, err = svc.UpdateProfile(ctx, a.ID, UpdateProfileInput{Username: strPtr("ana")})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, a.ID, UpdateProfileInput{Username: strPtr("bob")})
	var ae *apperror.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "username", ae.Field)

	_, err = svc.UpdateProfile(ctx, "missing", UpdateProfileInput{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_StaffFlag(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "keeper"})
	require.NoError(t, err)

	isStaff, err := svc.IsStaff(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, isStaff)

	_, err = svc.PromoteToStaff(ctx, u.ID)
	require.NoError(t, err)

	isStaff, err = svc.IsStaff(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, isStaff)

	_, err = svc.IsStaff(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
