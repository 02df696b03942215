package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Note represents a learning note written in markdown
type Note struct {
	ID         uuid.UUID      `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title      string         `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Content    string         `json:"content" db:"content" gorm:"column:content;type:text;not null"`
	Excerpt    *string        `json:"excerpt" db:"excerpt" gorm:"column:excerpt;type:text"`
	Tags       pq.StringArray `json:"tags" db:"tags" gorm:"column:tags;type:text[];not null;default:'{}'"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at" gorm:"column:created_at;not null;default:now()"`
	CategoryID *uuid.UUID     `json:"category_id,omitempty" db:"category_id" gorm:"column:category_id;type:uuid;index:idx_notes_category_id"`

	Category *Category `json:"category" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}
