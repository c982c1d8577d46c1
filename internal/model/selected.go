package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectedItem mirrors a document in the 'selected' collection: a student's
// cart entry, created when a class is picked and deleted either explicitly
// or as a side effect of a successful payment. It carries a snapshot of the
// class fields as they were at selection time.
type SelectedItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	ClassID         string             `bson:"classId" json:"classId"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail,omitempty" json:"instructorEmail,omitempty"`
	AvailableSeats  int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Picture         string             `bson:"picture,omitempty" json:"picture,omitempty"`
}
