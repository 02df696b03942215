package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/ai-portfolio-site/models"
	"gorm.io/gorm"
)

type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *NoteRepo {
	return &NoteRepo{db}
}

// FindAll returns all notes with their category, newest first
func (r *NoteRepo) FindAll(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// FindByID returns a note by its ID, or nil when no such note exists
func (r *NoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		Take(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}
