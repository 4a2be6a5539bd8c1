package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movienuts/internal/model"
)

// BlogRepository defines persistence operations for reviews.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	ListByAuthor(ctx context.Context, author primitive.ObjectID, page, limit int64) ([]model.Blog, int64, error)
	ListRecent(ctx context.Context, limit int64) ([]model.Blog, error)
}

type blogRepository struct {
	col *mongo.Collection
}

// NewBlogRepository builds a Mongo-backed repository.
func NewBlogRepository(database *mongo.Database) BlogRepository {
	return &blogRepository{col: database.Collection("blogs")}
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	blog.CreatedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	blog.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByAuthor returns one page of an author's reviews, newest first, plus
// the author's total review count for pager rendering.
func (r *blogRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID, page, limit int64) ([]model.Blog, int64, error) {
	filter := bson.M{"author": author}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	var blogs []model.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, 0, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, total, nil
}

func (r *blogRepository) ListRecent(ctx context.Context, limit int64) ([]model.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list recent blogs: %w", err)
	}
	defer cur.Close(ctx)

	var blogs []model.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}
