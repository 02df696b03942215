package api

import (
	"context"
	"net/http"

	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rpupo63/ai-portfolio-site/services"
	"github.com/rpupo63/ai-portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const statsFailedMessage = "Failed to fetch stats"

type statsCollector interface {
	Collect(ctx context.Context) (*services.Stats, error)
}

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	pages     htmlResponder
	stats     statsCollector
}

func newAdminHandler(stats statsCollector, renderer pageRenderer) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pages:     newHTMLResponder(renderer, logger),
		stats:     stats,
	}
}

func (h adminHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.stats.Collect(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(statsFailedMessage, err))
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

func (h adminHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.pages.render(w, r, http.StatusOK, views.PageAdminLogin, "Admin Login", nil)
	}
}

// dashboard only renders the shell; the browser loads the numbers from /api/admin/stats.
func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := ""
		if claims := ctxGetClaims(r.Context()); claims != nil {
			email = claims.Email
		}
		h.pages.render(w, r, http.StatusOK, views.PageAdminDashboard, "Admin Dashboard", views.NewDashboardPage(email))
	}
}
