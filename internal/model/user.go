package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Username and email each carry a
// unique index; the password field only ever holds a bcrypt digest.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	PasswordHash   string             `json:"-" bson:"password"` // Never expose in JSON
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
