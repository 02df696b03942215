package database

import (
	"context"

	"github.com/rpupo63/ai-portfolio-site/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, featured ones first and newest first within each group
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}
