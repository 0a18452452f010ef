package blogRepo

import (
	"context"
	"fmt"
	"time"

	"brightsmile/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *mongoBlogRepo) Create(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *mongoBlogRepo) Update(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update blog post %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoBlogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *mongoBlogRepo) GetBySlug(slug string) (*models.BlogPost, error) {
	return r.findOne(bson.M{"slug": slug})
}

func (r *mongoBlogRepo) GetAll() ([]models.BlogPost, error) {
	return r.find(bson.M{})
}

func (r *mongoBlogRepo) GetPublished() ([]models.BlogPost, error) {
	return r.find(bson.M{"is_published": true})
}

func (r *mongoBlogRepo) findOne(filter bson.M) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, filter).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return &post, nil
}

func (r *mongoBlogRepo) find(filter bson.M) ([]models.BlogPost, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}
