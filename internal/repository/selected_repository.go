package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prolearn/course-marketplace/internal/model"
)

// SelectedRepo provides access to the 'selected' collection (cart entries).
type SelectedRepo struct{ Col Collection }

func NewSelectedRepo(col Collection) *SelectedRepo { return &SelectedRepo{Col: col} }

func (r *SelectedRepo) find(ctx context.Context, filter Filter) ([]model.SelectedItem, error) {
	docs, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]model.SelectedItem, 0, len(docs))
	for _, d := range docs {
		var it model.SelectedItem
		if err := bson.Unmarshal(d, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ByEmail returns the cart entries belonging to the given email.
func (r *SelectedRepo) ByEmail(ctx context.Context, email string) ([]model.SelectedItem, error) {
	return r.find(ctx, Filter{"email": email})
}

// ByID returns the cart entry with the given id as a list; an unknown id
// yields an empty list.
func (r *SelectedRepo) ByID(ctx context.Context, id string) ([]model.SelectedItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, Filter{"_id": oid})
}

// Insert adds a cart entry.
func (r *SelectedRepo) Insert(ctx context.Context, it model.SelectedItem) (InsertResult, error) {
	return r.Col.InsertOne(ctx, it)
}

// Delete removes a cart entry by id, either on explicit removal or as the
// cart-clear step of payment finalization.
func (r *SelectedRepo) Delete(ctx context.Context, id string) (DeleteResult, error) {
	return r.Col.DeleteByID(ctx, id)
}
