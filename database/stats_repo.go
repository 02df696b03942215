package database

import (
	"context"

	"github.com/rpupo63/ai-portfolio-site/models"
	"gorm.io/gorm"
)

// StatsRepo answers the aggregate queries behind the admin dashboard.
type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db}
}

func (r *StatsRepo) CountProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Project{})
}

func (r *StatsRepo) CountNotes(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Note{})
}

func (r *StatsRepo) CountVideos(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Video{})
}

func (r *StatsRepo) CountUnreadMessages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("status = ?", models.ContactStatusUnread).
		Count(&n).Error
	return n, err
}

// SumVideoViews adds up the view counters of every video, zero when there are none.
func (r *StatsRepo) SumVideoViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Video{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StatsRepo) count(ctx context.Context, model interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}
