package adminRepo

import (
	"context"
	"fmt"
	"time"

	"brightsmile/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *mongoAdminRepo) Create(u *models.AdminUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *mongoAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *mongoAdminRepo) GetByID(id string) (*models.AdminUser, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *mongoAdminRepo) findOne(filter bson.M) (*models.AdminUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var u models.AdminUser
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}
	return &u, nil
}
