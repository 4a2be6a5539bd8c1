package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a locally cached catalog entry, upserted from TMDB keyed on
// TMDBID.
type Movie struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TMDBID       int64              `json:"tmdbId" bson:"tmdbId"`
	Title        string             `json:"title" bson:"title"`
	Overview     string             `json:"overview,omitempty" bson:"overview,omitempty"`
	ReleaseDate  string             `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	PosterPath   string             `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	BackdropPath string             `json:"backdropPath,omitempty" bson:"backdropPath,omitempty"`
	Rating       float64            `json:"rating" bson:"rating"`
	Genres       []string           `json:"genres" bson:"genres"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MovieSummary is the projection returned by title search: just enough to
// render a result row.
type MovieSummary struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TMDBID     int64              `json:"tmdbId" bson:"tmdbId"`
	Title      string             `json:"title" bson:"title"`
	PosterPath string             `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
}
