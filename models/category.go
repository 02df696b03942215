package models

import "github.com/google/uuid"

// Category groups notes by topic
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"column:name;type:text;not null;unique"`
	Description *string   `json:"description" db:"description" gorm:"column:description;type:text"`
}
