package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prolearn/course-marketplace/internal/model"
)

// ClassRepo provides access to the 'classes' collection.
type ClassRepo struct{ Col Collection }

func NewClassRepo(col Collection) *ClassRepo { return &ClassRepo{Col: col} }

func (r *ClassRepo) find(ctx context.Context, filter Filter) ([]model.Class, error) {
	docs, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	classes := make([]model.Class, 0, len(docs))
	for _, d := range docs {
		var cl model.Class
		if err := bson.Unmarshal(d, &cl); err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, nil
}

// All returns every class regardless of status.
func (r *ClassRepo) All(ctx context.Context) ([]model.Class, error) {
	return r.find(ctx, Filter{})
}

// Approved returns only classes an admin has approved. Pending and denied
// listings never appear in this result.
func (r *ClassRepo) Approved(ctx context.Context) ([]model.Class, error) {
	return r.find(ctx, Filter{"status": model.StatusApproved})
}

// ByInstructor returns the classes submitted by the given instructor email.
func (r *ClassRepo) ByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return r.find(ctx, Filter{"instructorEmail": email})
}

// ByID returns the class with the given id as a list, matching the response
// shape the API has always used for this lookup. An unknown id yields an
// empty list, not an error.
func (r *ClassRepo) ByID(ctx context.Context, id string) ([]model.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, Filter{"_id": oid})
}

// Insert stores a new class submission. Status defaults to pending when the
// submission does not set one.
func (r *ClassRepo) Insert(ctx context.Context, cl model.Class) (InsertResult, error) {
	if cl.Status == "" {
		cl.Status = model.StatusPending
	}
	return r.Col.InsertOne(ctx, cl)
}

// Update overwrites the mutable listing fields of a class.
func (r *ClassRepo) Update(ctx context.Context, id string, cl model.Class) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{
		"name":            cl.Name,
		"instructorName":  cl.InstructorName,
		"instructorEmail": cl.InstructorEmail,
		"availableSeats":  cl.AvailableSeats,
		"price":           cl.Price,
		"picture":         cl.Picture,
		"status":          cl.Status,
		"feedback":        cl.Feedback,
	})
}

// Approve marks a class approved.
func (r *ClassRepo) Approve(ctx context.Context, id string) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{"status": model.StatusApproved, "feedback": "approved"})
}

// Deny marks a class denied.
func (r *ClassRepo) Deny(ctx context.Context, id string) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{"status": model.StatusDenied})
}

// SetFeedback records admin feedback on a class.
func (r *ClassRepo) SetFeedback(ctx context.Context, id, feedback string) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{"feedback": feedback})
}

// DecrementSeats drops availableSeats by one. There is no floor: a second
// decrement for the same class keeps going down.
func (r *ClassRepo) DecrementSeats(ctx context.Context, id string) (UpdateResult, error) {
	return r.Col.IncByID(ctx, id, "availableSeats", -1)
}
