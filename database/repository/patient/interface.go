// File: database/repository/patient/interface.go
package patientRepo

import (
	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository persists the patient directory. Entries are upserted
// from wizard submissions, keyed by email.
type PatientRepository interface {
	UpsertByEmail(p *models.Patient) error
	GetAll() ([]models.Patient, error)
	Count() (int64, error)
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a PatientRepository backed by MongoDB.
func NewMongoPatientRepo() PatientRepository {
	return &mongoPatientRepo{coll: database.Collection("patients")}
}
