package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// StatsCounter is the read side the dashboard aggregates over.
type StatsCounter interface {
	CountProjects(ctx context.Context) (int64, error)
	CountNotes(ctx context.Context) (int64, error)
	CountVideos(ctx context.Context) (int64, error)
	CountUnreadMessages(ctx context.Context) (int64, error)
	SumVideoViews(ctx context.Context) (int64, error)
}

// Stats is the admin dashboard summary.
type Stats struct {
	Projects   int64 `json:"projects"`
	Notes      int64 `json:"notes"`
	Videos     int64 `json:"videos"`
	Messages   int64 `json:"messages"`
	TotalViews int64 `json:"totalViews"`
}

type StatsService struct {
	counter StatsCounter
}

func NewStatsService(counter StatsCounter) *StatsService {
	return &StatsService{counter: counter}
}

// Collect runs the five queries concurrently. The first failure cancels the rest
// and no partial result is returned.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	run := func(name string, query func(context.Context) (int64, error), dst *int64) {
		g.Go(func() error {
			n, err := query(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	run("projects", s.counter.CountProjects, &stats.Projects)
	run("notes", s.counter.CountNotes, &stats.Notes)
	run("videos", s.counter.CountVideos, &stats.Videos)
	run("unread messages", s.counter.CountUnreadMessages, &stats.Messages)
	run("video views", s.counter.SumVideoViews, &stats.TotalViews)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
