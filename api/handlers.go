package api

import (
	"time"

	"github.com/rpupo63/ai-portfolio-site/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, secureCookies bool, startupTime time.Time) *routeHandlers {
	db := deps.Database

	var notifier messageNotifier
	if deps.Notifier != nil {
		notifier = deps.Notifier
	}

	return &routeHandlers{
		pageHandler:    newPageHandler(deps.Renderer, db.ProjectRepo(), db.NoteRepo(), db.CategoryRepo(), db.VideoRepo()),
		contentHandler: newContentHandler(db.ProjectRepo(), db.NoteRepo(), db.CategoryRepo(), db.VideoRepo()),
		contactHandler: newContactHandler(db.ContactMessageRepo(), notifier),
		authHandler:    newAuthHandler(deps.Authenticator, secureCookies),
		adminHandler:   newAdminHandler(services.NewStatsService(db.StatsRepo()), deps.Renderer),
		healthHandler:  newHealthHandler(db, startupTime),
	}
}
