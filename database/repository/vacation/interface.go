// File: database/repository/vacation/interface.go
package vacationRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no vacation matches the requested id.
var ErrNotFound = errors.New("vacation not found")

// VacationRepository persists doctor absence ranges.
type VacationRepository interface {
	Create(v *models.DoctorVacation) error
	Delete(id string) error
	GetByID(id string) (*models.DoctorVacation, error)
	GetByDoctor(doctorID string) ([]models.DoctorVacation, error)
	// GetCovering returns vacations for the doctor whose range contains date.
	GetCovering(doctorID, date string) ([]models.DoctorVacation, error)
}

type mongoVacationRepo struct {
	coll *mongo.Collection
}

// NewMongoVacationRepo constructs a VacationRepository backed by MongoDB.
func NewMongoVacationRepo() VacationRepository {
	return &mongoVacationRepo{coll: database.Collection("doctor_vacations")}
}
