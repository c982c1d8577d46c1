package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can hold. An empty role means the account was created on
// first sign-in and has not been granted anything yet.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User mirrors a document in the 'users' collection. Accounts are keyed by
// email: POST /users refuses to insert a second document for the same email.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
