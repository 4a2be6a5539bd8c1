package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a user's rating and write-up of a film. The film field is a
// denormalized snapshot embedded at creation time, not a live reference,
// so a later catalog re-import cannot rewrite published reviews.
type Blog struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Author    primitive.ObjectID     `json:"author" bson:"author"`
	Film      map[string]interface{} `json:"film" bson:"film"`
	Rating    float64                `json:"rating" bson:"rating"`
	Title     string                 `json:"title" bson:"title"`
	Body      string                 `json:"body" bson:"body"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}
