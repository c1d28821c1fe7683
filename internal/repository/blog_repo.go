package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"academy-api/internal/domain"
)

var ErrPostNotFound = errors.New("blog post not found")

type BlogRepository interface {
	Create(ctx context.Context, post domain.BlogPost) error
	Update(ctx context.Context, post domain.BlogPost) error
	FindBySlug(ctx context.Context, slug string) (domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (domain.BlogPost, error)
	ListByStatus(ctx context.Context, status string) ([]domain.BlogPost, error)
}

// MongoBlogRepository stores posts in the "posts" collection.
type MongoBlogRepository struct {
	col *mongo.Collection
}

func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{col: db.Collection("posts")}
}

func (r *MongoBlogRepository) Create(ctx context.Context, post domain.BlogPost) error {
	_, err := r.col.InsertOne(ctx, post)
	return err
}

func (r *MongoBlogRepository) Update(ctx context.Context, post domain.BlogPost) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": bson.M{
		"slug":       post.Slug,
		"title":      post.Title,
		"excerpt":    post.Excerpt,
		"body":       post.Body,
		"author":     post.Author,
		"status":     post.Status,
		"tags":       post.Tags,
		"updated_at": post.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *MongoBlogRepository) FindBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.BlogPost{}, ErrPostNotFound
	}
	if err != nil {
		return domain.BlogPost{}, err
	}
	return post, nil
}

func (r *MongoBlogRepository) FindByID(ctx context.Context, id string) (domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.BlogPost{}, ErrPostNotFound
	}
	if err != nil {
		return domain.BlogPost{}, err
	}
	return post, nil
}

func (r *MongoBlogRepository) ListByStatus(ctx context.Context, status string) ([]domain.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []domain.BlogPost
	for cur.Next(ctx) {
		var p domain.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
