// File: database/repository/testimonial/interface.go
package testimonialRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no testimonial matches the requested id.
var ErrNotFound = errors.New("testimonial not found")

// TestimonialRepository persists patient reviews.
type TestimonialRepository interface {
	Create(t *models.Testimonial) error
	Update(t *models.Testimonial) error
	Delete(id string) error
	GetByID(id string) (*models.Testimonial, error)
	GetAll() ([]models.Testimonial, error)
	GetActive() ([]models.Testimonial, error)
}

type mongoTestimonialRepo struct {
	coll *mongo.Collection
}

// NewMongoTestimonialRepo constructs a TestimonialRepository backed by MongoDB.
func NewMongoTestimonialRepo() TestimonialRepository {
	return &mongoTestimonialRepo{coll: database.Collection("testimonials")}
}
