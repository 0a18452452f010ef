// File: database/repository/service/interface.go
package serviceRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no service matches the requested id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository persists the clinic's treatment catalog.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
	GetByID(id string) (*models.Service, error)
	GetAll() ([]models.Service, error)
	GetActive() ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.Collection("services")}
}
