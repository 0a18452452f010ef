// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no doctor matches the requested id.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository persists the clinic's practitioners.
type DoctorRepository interface {
	Create(doc *models.Doctor) error
	Update(doc *models.Doctor) error
	Delete(id string) error
	GetByID(id string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
	GetActive() ([]models.Doctor, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a DoctorRepository backed by MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{coll: database.Collection("doctors")}
}
