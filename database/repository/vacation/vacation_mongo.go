package vacationRepo

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

func (r *mongoVacationRepo) Create(v *models.DoctorVacation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to create vacation: %w", err)
	}
	return nil
}

func (r *mongoVacationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vacation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoVacationRepo) GetByID(id string) (*models.DoctorVacation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var v models.DoctorVacation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch vacation with id %s: %w", id, err)
	}
	return &v, nil
}

func (r *mongoVacationRepo) GetByDoctor(doctorID string) ([]models.DoctorVacation, error) {
	return r.find(bson.M{"doctor_id": doctorID})
}

func (r *mongoVacationRepo) GetCovering(doctorID, date string) ([]models.DoctorVacation, error) {
	// ISO dates order lexicographically, so range containment is a plain
	// string comparison.
	return r.find(bson.M{
		"doctor_id":  doctorID,
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	})
}

func (r *mongoVacationRepo) find(filter bson.M) ([]models.DoctorVacation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vacations: %w", err)
	}
	defer cursor.Close(ctx)

	var vacations []models.DoctorVacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, fmt.Errorf("failed to decode vacations: %w", err)
	}
	return vacations, nil
}
