package slotRepo

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

func uniqueSlotIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_id", Value: 1},
			{Key: "slot_date", Value: 1},
			{Key: "start_time", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
}

func (r *mongoSlotRepo) Create(slot *models.AvailabilitySlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create availability slot: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) Update(slot *models.AvailabilitySlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": slot.ID}, bson.M{"$set": slot})
	if err != nil {
		return fmt.Errorf("failed to update availability slot %s: %w", slot.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("availability slot %s not found", slot.ID)
	}
	return nil
}

func (r *mongoSlotRepo) GetByKey(doctorID, date, startTime string) (*models.AvailabilitySlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"doctor_id": doctorID, "slot_date": date, "start_time": startTime}
	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetByDoctorAndDate(doctorID, date string) ([]models.AvailabilitySlot, error) {
	return r.find(bson.M{"doctor_id": doctorID, "slot_date": date})
}

func (r *mongoSlotRepo) GetByDoctorInRange(doctorID, from, to string) ([]models.AvailabilitySlot, error) {
	return r.find(bson.M{
		"doctor_id": doctorID,
		"slot_date": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoSlotRepo) DeleteRange(doctorID, from, to string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_id": doctorID,
		"slot_date": bson.M{"$gte": from, "$lte": to},
	}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete availability slots for doctor %s: %w", doctorID, err)
	}
	return result.DeletedCount, nil
}

func (r *mongoSlotRepo) DeleteBefore(date string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"slot_date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to prune past availability slots: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *mongoSlotRepo) find(filter bson.M) ([]models.AvailabilitySlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "slot_date", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availability slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode availability slots: %w", err)
	}
	return slots, nil
}
