// File: database/repository/admin/interface.go
package adminRepo

import (
	"errors"

	"brightsmile/database"
	"brightsmile/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no admin account matches.
var ErrNotFound = errors.New("admin user not found")

// AdminRepository persists back-office accounts.
type AdminRepository interface {
	Create(u *models.AdminUser) error
	GetByEmail(email string) (*models.AdminUser, error)
	GetByID(id string) (*models.AdminUser, error)
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs an AdminRepository backed by MongoDB.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{coll: database.Collection("admin_users")}
}
