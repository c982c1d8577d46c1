package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prolearn/course-marketplace/internal/model"
)

// UserRepo provides access to the 'users' collection.
type UserRepo struct{ Col Collection }

func NewUserRepo(col Collection) *UserRepo { return &UserRepo{Col: col} }

// All returns every user.
func (r *UserRepo) All(ctx context.Context) ([]model.User, error) {
	docs, err := r.Col.Find(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		var u model.User
		if err := bson.Unmarshal(d, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ByEmail fetches a user by normalized email. Returns ErrNotFound on a miss.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	doc, err := r.Col.FindOne(ctx, Filter{"email": email})
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := bson.Unmarshal(doc, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// ByRole returns all users holding the given role.
func (r *UserRepo) ByRole(ctx context.Context, role string) ([]model.User, error) {
	docs, err := r.Col.Find(ctx, Filter{"role": role})
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		var u model.User
		if err := bson.Unmarshal(d, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Create inserts a user document.
func (r *UserRepo) Create(ctx context.Context, u model.User) (InsertResult, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.Col.InsertOne(ctx, u)
}

// Delete removes a user by id.
func (r *UserRepo) Delete(ctx context.Context, id string) (DeleteResult, error) {
	return r.Col.DeleteByID(ctx, id)
}

// SetRole grants a role to the user with the given id. Granting the same
// role twice is a no-op at the document level, so the operation is
// idempotent.
func (r *UserRepo) SetRole(ctx context.Context, id, role string) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{"role": role})
}
