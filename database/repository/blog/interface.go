// File: database/repository/blog/interface.go
package blogRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no post matches the requested id or slug.
var ErrNotFound = errors.New("blog post not found")

// BlogRepository persists blog articles.
type BlogRepository interface {
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id string) error
	GetByID(id string) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	// GetAll returns every post, newest first.
	GetAll() ([]models.BlogPost, error)
	// GetPublished returns published posts, newest first.
	GetPublished() ([]models.BlogPost, error)
}

type mongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo constructs a BlogRepository backed by MongoDB.
func NewMongoBlogRepo() BlogRepository {
	return &mongoBlogRepo{coll: database.Collection("blog_posts")}
}
