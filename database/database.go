package database

import (
	"context"

	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	noteRepo           *NoteRepo
	categoryRepo       *CategoryRepo
	videoRepo          *VideoRepo
	contactMessageRepo *ContactMessageRepo
	userRepo           *UserRepo
	statsRepo          *StatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		noteRepo:           NewNoteRepo(db),
		categoryRepo:       NewCategoryRepo(db),
		videoRepo:          NewVideoRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		userRepo:           NewUserRepo(db),
		statsRepo:          NewStatsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) NoteRepo() *NoteRepo {
	return d.noteRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) VideoRepo() *VideoRepo {
	return d.videoRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) StatsRepo() *StatsRepo {
	return d.statsRepo
}

// Ping checks that the store answers a trivial query.
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}
