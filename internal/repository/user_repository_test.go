package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prolearn/course-marketplace/internal/model"
)

func TestUserByEmailNormalizes(t *testing.T) {
	repo := NewUserRepo(NewMemoryCollection())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Email: "  Mixed@Example.COM ", Name: "M"})
	require.NoError(t, err)

	u, err := repo.ByEmail(ctx, "mixed@example.com")
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", u.Email)

	_, err = repo.ByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserSetRoleIdempotent(t *testing.T) {
	repo := NewUserRepo(NewMemoryCollection())
	ctx := context.Background()

	res, err := repo.Create(ctx, model.User{Email: "u@example.com", Role: model.RoleStudent})
	require.NoError(t, err)

	first, err := repo.SetRole(ctx, res.InsertedID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ModifiedCount)

	second, err := repo.SetRole(ctx, res.InsertedID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.ModifiedCount)

	u, err := repo.ByEmail(ctx, "u@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestUserByRole(t *testing.T) {
	repo := NewUserRepo(NewMemoryCollection())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Email: "s@example.com", Role: model.RoleStudent})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.User{Email: "i@example.com", Role: model.RoleInstructor})
	require.NoError(t, err)

	instructors, err := repo.ByRole(ctx, model.RoleInstructor)
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, "i@example.com", instructors[0].Email)
}
