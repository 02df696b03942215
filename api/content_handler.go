package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contentHandler exposes the public tables as JSON.
type contentHandler struct {
	responder  Responder
	logger     zerolog.Logger
	projects   projectLister
	notes      noteReader
	categories categoryLister
	videos     videoLister
}

func newContentHandler(projects projectLister, notes noteReader, categories categoryLister, videos videoLister) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		projects:   projects,
		notes:      notes,
		categories: categories,
		videos:     videos,
	}
}

func (h contentHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h contentHandler) getAllNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := h.notes.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "notes", err))
			return
		}
		if notes == nil {
			notes = []*models.Note{}
		}
		h.responder.WriteJSON(w, notes)
	}
}

func (h contentHandler) getNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("noteID", "must be a UUID"))
			return
		}

		note, err := h.notes.FindByID(r.Context(), noteID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "note", err))
			return
		}
		if note == nil {
			h.responder.WriteError(w, errs.NewNotFound("note"))
			return
		}
		h.responder.WriteJSON(w, note)
	}
}

func (h contentHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "categories", err))
			return
		}
		if categories == nil {
			categories = []*models.Category{}
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h contentHandler) getAllVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videos.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "videos", err))
			return
		}
		if videos == nil {
			videos = []*models.Video{}
		}
		h.responder.WriteJSON(w, videos)
	}
}
