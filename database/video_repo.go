package database

import (
	"context"

	"github.com/rpupo63/ai-portfolio-site/models"
	"gorm.io/gorm"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db}
}

// FindAll returns all videos, newest first
func (r *VideoRepo) FindAll(ctx context.Context) ([]*models.Video, error) {
	var videos []*models.Video
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error
	return videos, err
}
