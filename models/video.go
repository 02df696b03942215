package models

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a published video
type Video struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string    `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Description  *string   `json:"description" db:"description" gorm:"column:description;type:text"`
	VideoURL     string    `json:"video_url" db:"video_url" gorm:"column:video_url;type:text;not null"`
	ThumbnailURL *string   `json:"thumbnail_url" db:"thumbnail_url" gorm:"column:thumbnail_url;type:text"`
	Views        int64     `json:"views" db:"views" gorm:"column:views;type:bigint;not null;default:0"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;not null;default:now()"`
}
