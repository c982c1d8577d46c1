package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prolearn/course-marketplace/internal/handler"
	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/repository"
)

func TestCreateUserDedupesOnEmail(t *testing.T) {
	repo := repository.NewUserRepo(repository.NewMemoryCollection())
	h := handler.NewUserHandler(repo)

	c, rec := newJSONContext(t, http.MethodPost, "/users", model.User{Email: "new@example.com", Name: "New"}, "")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeJSON[repository.InsertResult](t, rec).InsertedID)

	c, rec = newJSONContext(t, http.MethodPost, "/users", model.User{Email: "new@example.com", Name: "Again"}, "")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User already exists", decodeJSON[map[string]string](t, rec)["message"])

	users, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMakeAdminIsIdempotent(t *testing.T) {
	repo := repository.NewUserRepo(repository.NewMemoryCollection())
	h := handler.NewUserHandler(repo)

	res, err := repo.Create(context.Background(), model.User{Email: "u@example.com", Role: model.RoleStudent})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(t, http.MethodPatch, "/users/admin/"+res.InsertedID, nil, "")
		c.SetParamNames("id")
		c.SetParamValues(res.InsertedID)
		require.NoError(t, h.MakeAdmin(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	u, err := repo.ByEmail(context.Background(), "u@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestIsAdminFlag(t *testing.T) {
	repo := repository.NewUserRepo(repository.NewMemoryCollection())
	h := handler.NewUserHandler(repo)

	_, err := repo.Create(context.Background(), model.User{Email: "boss@example.com", Role: model.RoleAdmin})
	require.NoError(t, err)

	c, rec := newJSONContext(t, http.MethodGet, "/users/admin/boss@example.com", nil, "")
	c.SetParamNames("email")
	c.SetParamValues("boss@example.com")
	require.NoError(t, h.IsAdmin(c))
	assert.True(t, decodeJSON[map[string]bool](t, rec)["admin"])

	// Unknown emails are simply not admins, not errors.
	c, rec = newJSONContext(t, http.MethodGet, "/users/admin/ghost@example.com", nil, "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")
	require.NoError(t, h.IsAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeJSON[map[string]bool](t, rec)["admin"])
}

func TestInstructorListing(t *testing.T) {
	repo := repository.NewUserRepo(repository.NewMemoryCollection())
	h := handler.NewUserHandler(repo)

	_, err := repo.Create(context.Background(), model.User{Email: "i@example.com", Role: model.RoleInstructor})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), model.User{Email: "s@example.com", Role: model.RoleStudent})
	require.NoError(t, err)

	c, rec := newJSONContext(t, http.MethodGet, "/users/ins", nil, "")
	require.NoError(t, h.Instructors(c))
	users := decodeJSON[[]model.User](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "i@example.com", users[0].Email)

	c, rec = newJSONContext(t, http.MethodGet, "/users/student", nil, "")
	require.NoError(t, h.Students(c))
	users = decodeJSON[[]model.User](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "s@example.com", users[0].Email)
}

func TestDeleteUser(t *testing.T) {
	repo := repository.NewUserRepo(repository.NewMemoryCollection())
	h := handler.NewUserHandler(repo)

	res, err := repo.Create(context.Background(), model.User{Email: "gone@example.com"})
	require.NoError(t, err)

	c, rec := newJSONContext(t, http.MethodDelete, "/users/"+res.InsertedID, nil, "")
	c.SetParamNames("id")
	c.SetParamValues(res.InsertedID)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decodeJSON[repository.DeleteResult](t, rec).DeletedCount)

	_, err = repo.ByEmail(context.Background(), "gone@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
