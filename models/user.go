package models

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// User is an account allowed to sign in to the admin area
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" db:"email" gorm:"column:email;type:text;not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash;type:text;not null"`
	Role         string    `json:"role" db:"role" gorm:"column:role;type:text;not null;default:'admin'"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}
