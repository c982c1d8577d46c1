package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment finalization workflow statuses, written as each step of the
// multi-document sequence completes. A payment stuck at PaymentRecorded or
// PaymentSeatsAdjusted marks a partially-applied operation: the record
// exists but the seat decrement or cart clear did not go through.
const (
	PaymentRecorded      = "recorded"
	PaymentSeatsAdjusted = "seats_adjusted"
	PaymentCompleted     = "completed"
)

// Payment mirrors a document in the 'payments' collection. Created only by
// payment finalization and never deleted. SelectedID references the Class
// whose seats were decremented, ChosenID the SelectedItem that was removed.
// AvailableSeats is the seat count the client reported at checkout; it is
// stored verbatim and plays no part in the decrement.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Price          float64            `bson:"price" json:"price"`
	TransactionID  string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date           string             `bson:"date,omitempty" json:"date,omitempty"`
	ClassName      string             `bson:"className,omitempty" json:"className,omitempty"`
	SelectedID     string             `bson:"selectedId" json:"selectedId"`
	ChosenID       string             `bson:"chosenId" json:"chosenId"`
	AvailableSeats int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
}
