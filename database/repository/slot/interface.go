// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository persists availability exception rows. The store holds only
// exceptions to the default-available policy, never a full calendar.
type SlotRepository interface {
	Create(slot *models.AvailabilitySlot) error
	Update(slot *models.AvailabilitySlot) error
	// GetByKey fetches the row for one (doctor, date, time) triple, or nil
	// when no exception is stored.
	GetByKey(doctorID, date, startTime string) (*models.AvailabilitySlot, error)
	GetByDoctorAndDate(doctorID, date string) ([]models.AvailabilitySlot, error)
	GetByDoctorInRange(doctorID, from, to string) ([]models.AvailabilitySlot, error)
	// DeleteRange removes all rows for the doctor dated inside [from, to].
	// Deleting absent rows is a no-op, so the call is idempotent.
	DeleteRange(doctorID, from, to string) (int64, error)
	// DeleteBefore removes rows dated strictly before the given date.
	DeleteBefore(date string) (int64, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository backed by MongoDB.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{coll: database.Collection("availability_slots")}
}

// EnsureIndexes creates the unique index backing the slot identity
// invariant: one row per (doctor, date, startTime).
func EnsureIndexes(ctx context.Context) error {
	coll := database.Collection("availability_slots")
	_, err := coll.Indexes().CreateOne(ctx, uniqueSlotIndex())
	return err
}
