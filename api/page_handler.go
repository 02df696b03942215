package api

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rpupo63/ai-portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type pageRenderer interface {
	Render(w io.Writer, name string, page views.Page) error
}

type projectLister interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
}

type noteReader interface {
	FindAll(ctx context.Context) ([]*models.Note, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
}

type categoryLister interface {
	FindAll(ctx context.Context) ([]*models.Category, error)
}

type videoLister interface {
	FindAll(ctx context.Context) ([]*models.Video, error)
}

// htmlResponder renders into a buffer first so a template failure still yields a clean 500.
type htmlResponder struct {
	renderer pageRenderer
	logger   zerolog.Logger
}

func newHTMLResponder(renderer pageRenderer, logger zerolog.Logger) htmlResponder {
	return htmlResponder{renderer: renderer, logger: logger}
}

func (h htmlResponder) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	var buf bytes.Buffer
	err := h.renderer.Render(&buf, name, views.Page{Title: title, Path: r.URL.Path, Data: data})
	if err != nil {
		h.logger.Error().Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error().Err(err).Msg("error writing page")
	}
}

type pageHandler struct {
	logger     zerolog.Logger
	pages      htmlResponder
	projects   projectLister
	notes      noteReader
	categories categoryLister
	videos     videoLister
}

func newPageHandler(renderer pageRenderer, projects projectLister, notes noteReader, categories categoryLister, videos videoLister) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		logger:     logger,
		pages:      newHTMLResponder(renderer, logger),
		projects:   projects,
		notes:      notes,
		categories: categories,
		videos:     videos,
	}
}

func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.pages.render(w, r, http.StatusOK, views.PageHome, "", views.NewHomePage())
	}
}

// Public listing pages log store failures and fall back to the empty state.

func (h pageHandler) projectsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("error fetching projects")
			projects = nil
		}
		h.pages.render(w, r, http.StatusOK, views.PageProjects, "Projects | AI Engineer Portfolio", views.NewProjectsPage(projects))
	}
}

func (h pageHandler) notesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			notes      []*models.Note
			categories []*models.Category
			g          errgroup.Group
		)

		g.Go(func() error {
			var err error
			if notes, err = h.notes.FindAll(r.Context()); err != nil {
				h.logger.Error().Err(err).Msg("error fetching notes")
				notes = nil
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if categories, err = h.categories.FindAll(r.Context()); err != nil {
				h.logger.Error().Err(err).Msg("error fetching categories")
				categories = nil
			}
			return nil
		})
		_ = g.Wait()

		h.pages.render(w, r, http.StatusOK, views.PageNotes, "Learning Notes | AI Engineer Portfolio", views.NewNotesPage(notes, categories))
	}
}

func (h pageHandler) notePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
		if err != nil {
			h.notFound()(w, r)
			return
		}

		note, err := h.notes.FindByID(r.Context(), noteID)
		if err != nil {
			h.logger.Error().Err(err).Str("noteId", noteID.String()).Msg("error fetching note")
			http.Error(w, internalErrorMessage, http.StatusInternalServerError)
			return
		}
		if note == nil {
			h.notFound()(w, r)
			return
		}

		page, err := views.NewNotePage(*note)
		if err != nil {
			h.logger.Error().Err(err).Str("noteId", noteID.String()).Msg("error rendering markdown")
			http.Error(w, internalErrorMessage, http.StatusInternalServerError)
			return
		}
		h.pages.render(w, r, http.StatusOK, views.PageNote, note.Title+" | Learning Notes", page)
	}
}

func (h pageHandler) videosPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videos.FindAll(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("error fetching videos")
			videos = nil
		}
		h.pages.render(w, r, http.StatusOK, views.PageVideos, "Videos | AI Engineer Portfolio", views.NewVideosPage(videos))
	}
}

func (h pageHandler) contactPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.pages.render(w, r, http.StatusOK, views.PageContact, "Contact | AI Engineer Portfolio", nil)
	}
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.pages.render(w, r, http.StatusNotFound, views.PageNotFound, "Page not found", nil)
	}
}
