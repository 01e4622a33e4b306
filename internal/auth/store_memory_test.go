package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_CreateAndVerify(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u := User{Email: "a@example.com", Password: "pw", Name: "A", CreatedAt: PlaceholderCreatedAt}
	require.NoError(t, s.Create(ctx, u))

	got, err := s.Verify(ctx, "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = s.Verify(ctx, "a@example.com", "PW")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Verify(ctx, "b@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMemStore_DuplicateKeepsFirst(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, User{Email: "a@example.com", Password: "first", Name: "First"}))
	err := s.Create(ctx, User{Email: "a@example.com", Password: "second", Name: "Second"})
	assert.ErrorIs(t, err, ErrEmailExists)

	got, err := s.Verify(ctx, "a@example.com", "first")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
}

func TestMemStore_EmailIsExactKey(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, User{Email: "A@example.com", Password: "pw"}))
	require.NoError(t, s.Create(ctx, User{Email: "a@example.com", Password: "pw"}))
}
