package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prolearn/course-marketplace/internal/model"
)

// PaymentRepo provides access to the 'payments' collection. Payments are
// append-only: nothing in the API deletes them.
type PaymentRepo struct{ Col Collection }

func NewPaymentRepo(col Collection) *PaymentRepo { return &PaymentRepo{Col: col} }

func (r *PaymentRepo) find(ctx context.Context, filter Filter) ([]model.Payment, error) {
	docs, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0, len(docs))
	for _, d := range docs {
		var p model.Payment
		if err := bson.Unmarshal(d, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// All returns every payment record.
func (r *PaymentRepo) All(ctx context.Context) ([]model.Payment, error) {
	return r.find(ctx, Filter{})
}

// ByEmail returns the payment history for the given email.
func (r *PaymentRepo) ByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.find(ctx, Filter{"email": email})
}

// Insert records a payment. Only payment finalization calls this.
func (r *PaymentRepo) Insert(ctx context.Context, p model.Payment) (InsertResult, error) {
	return r.Col.InsertOne(ctx, p)
}

// SetStatus advances the workflow status on a payment record as the
// finalization steps complete.
func (r *PaymentRepo) SetStatus(ctx context.Context, id, status string) (UpdateResult, error) {
	return r.Col.UpdateByID(ctx, id, Filter{"status": status})
}
