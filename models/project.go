package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
)

// Project represents a portfolio project
type Project struct {
	ID          uuid.UUID      `json:"id" db:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string         `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Description string         `json:"description" db:"description" gorm:"column:description;type:text;not null"`
	TechStack   pq.StringArray `json:"tech_stack" db:"tech_stack" gorm:"column:tech_stack;type:text[];not null;default:'{}'"`
	GithubURL   *string        `json:"github_url" db:"github_url" gorm:"column:github_url;type:text"`
	DemoURL     *string        `json:"demo_url" db:"demo_url" gorm:"column:demo_url;type:text"`
	ImageURL    *string        `json:"image_url" db:"image_url" gorm:"column:image_url;type:text"`
	Category    string         `json:"category" db:"category" gorm:"column:category;type:text;not null"`
	Status      string         `json:"status" db:"status" gorm:"column:status;type:text;not null;default:'completed'"`
	Featured    bool           `json:"featured" db:"featured" gorm:"column:featured;not null;default:false"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at" gorm:"column:created_at;not null;default:now()"`
}

func (p Project) IsCompleted() bool {
	return p.Status == ProjectStatusCompleted
}
