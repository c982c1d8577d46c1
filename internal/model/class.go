package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class listing statuses. A freshly submitted class is pending until an
// admin approves or denies it; only approved classes are publicly listed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Class mirrors a document in the 'classes' collection. AvailableSeats is
// decremented by one for every finalized payment against the class.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Price           float64            `bson:"price" json:"price"`
	Picture         string             `bson:"picture,omitempty" json:"picture,omitempty"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
