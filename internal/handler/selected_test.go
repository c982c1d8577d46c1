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

func TestSelectedAddListRemove(t *testing.T) {
	repo := repository.NewSelectedRepo(repository.NewMemoryCollection())
	h := handler.NewSelectedHandler(repo)

	c, rec := newJSONContext(t, http.MethodPost, "/selected", model.SelectedItem{
		Email:   "student@example.com",
		ClassID: "abc123",
		Name:    "Guitar",
		Price:   30,
	}, "")
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeJSON[repository.InsertResult](t, rec).InsertedID
	require.NotEmpty(t, id)

	c, rec = newJSONContext(t, http.MethodGet, "/selected?email=student@example.com", nil, "student@example.com")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeJSON[[]model.SelectedItem](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Guitar", items[0].Name)

	c, rec = newJSONContext(t, http.MethodDelete, "/selected/"+id, nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Remove(c))
	assert.Equal(t, int64(1), decodeJSON[repository.DeleteResult](t, rec).DeletedCount)

	left, err := repo.ByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSelectedListSelfOnly(t *testing.T) {
	repo := repository.NewSelectedRepo(repository.NewMemoryCollection())
	h := handler.NewSelectedHandler(repo)

	c, rec := newJSONContext(t, http.MethodGet, "/selected?email=victim@example.com", nil, "attacker@example.com")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Missing email parameter is the documented empty-list quirk.
	c, rec = newJSONContext(t, http.MethodGet, "/selected", nil, "attacker@example.com")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeJSON[[]model.SelectedItem](t, rec))
}

func TestGetPickedByID(t *testing.T) {
	repo := repository.NewSelectedRepo(repository.NewMemoryCollection())
	h := handler.NewSelectedHandler(repo)

	res, err := repo.Insert(context.Background(), model.SelectedItem{Email: "s@example.com", ClassID: "c1"})
	require.NoError(t, err)

	c, rec := newJSONContext(t, http.MethodGet, "/picked/"+res.InsertedID, nil, "")
	c.SetParamNames("id")
	c.SetParamValues(res.InsertedID)
	require.NoError(t, h.GetPicked(c))
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeJSON[[]model.SelectedItem](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ClassID)
}
