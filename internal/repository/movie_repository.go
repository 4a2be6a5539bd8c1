package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movienuts/internal/model"
)

// MovieRepository defines persistence operations for the local catalog.
type MovieRepository interface {
	List(ctx context.Context) ([]model.Movie, error)
	Genres(ctx context.Context) ([]string, error)
	SearchByTitle(ctx context.Context, query string, limit int64) ([]model.MovieSummary, error)
	BulkUpsert(ctx context.Context, movies []model.Movie) (int64, error)
}

type movieRepository struct {
	col *mongo.Collection
}

// NewMovieRepository builds a Mongo-backed repository.
func NewMovieRepository(database *mongo.Database) MovieRepository {
	return &movieRepository{col: database.Collection("movies")}
}

func (r *movieRepository) List(ctx context.Context) ([]model.Movie, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []model.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// Genres returns every distinct genre name, sorted.
func (r *movieRepository) Genres(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "genres", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct genres: %w", err)
	}

	genres := make([]string, 0, len(values))
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			genres = append(genres, name)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// SearchByTitle matches titles case-insensitively, returning a slim
// projection capped at limit.
func (r *movieRepository) SearchByTitle(ctx context.Context, query string, limit int64) ([]model.MovieSummary, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: query, Options: "i"}}
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"title": 1, "posterPath": 1, "tmdbId": 1})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer cur.Close(ctx)

	results := make([]model.MovieSummary, 0, limit)
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return results, nil
}

// BulkUpsert writes a batch of catalog entries keyed on tmdbId, inserting
// new films and refreshing ones already imported.
func (r *movieRepository) BulkUpsert(ctx context.Context, movies []model.Movie) (int64, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	ops := make([]mongo.WriteModel, 0, len(movies))
	for _, m := range movies {
		update := bson.M{
			"$set": bson.M{
				"title":        m.Title,
				"overview":     m.Overview,
				"releaseDate":  m.ReleaseDate,
				"posterPath":   m.PosterPath,
				"backdropPath": m.BackdropPath,
				"rating":       m.Rating,
				"genres":       m.Genres,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{
				"tmdbId":    m.TMDBID,
				"createdAt": now,
			},
		}
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"tmdbId": m.TMDBID}).
			SetUpdate(update).
			SetUpsert(true))
	}

	res, err := r.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("bulk upsert movies: %w", err)
	}
	return upsertedTally(res), nil
}

// upsertedTally counts every document the batch touched: fresh inserts
// plus matched existing ones. ModifiedCount is a subset of MatchedCount
// and must not be added on top.
func upsertedTally(res *mongo.BulkWriteResult) int64 {
	return res.UpsertedCount + res.MatchedCount
}
