package models

import "time"

// AdminUser is a back-office account. Authentication issues a JWT whose hash
// is held in the auth cache until sign-out.
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // admin | staff
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
