// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the requested id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository persists booked visits.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// GetAll returns every appointment, newest date first, then by time.
	GetAll() ([]models.Appointment, error)
	GetByDate(date string) ([]models.Appointment, error)
	// GetActiveAt returns pending or confirmed appointments holding the
	// given date and time.
	GetActiveAt(date, timeStr string) ([]models.Appointment, error)
	UpdateStatus(id, status string) error
	CountByDate(date string) (int64, error)
	CountByDateAndStatus(date, status string) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs an AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{coll: database.Collection("appointments")}
}
