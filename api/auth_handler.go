package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	loginRequiredMessage = "Email and password are required"
	internalErrorMessage = "Internal server error"
	maxLoginBodyBytes    = 16 << 10
)

type sessionIssuer interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignToken(user *models.User) (string, error)
	TTL() time.Duration
}

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	issuer        sessionIssuer
	secureCookies bool
}

func newAuthHandler(issuer sessionIssuer, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		issuer:        issuer,
		secureCookies: secureCookies,
	}
}

func (h authHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// login never tells the caller whether the email or the password was wrong.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		email := strings.TrimSpace(req.Email)
		if field := firstBlank("email", email, "password", req.Password); field != "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field, loginRequiredMessage))
			return
		}

		user, err := h.issuer.SignIn(r.Context(), email, req.Password)
		if errs.IsInvalidCredentialsError(err) {
			h.logger.Warn().Str("remoteAddr", r.RemoteAddr).Msg("rejected login")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(internalErrorMessage, err))
			return
		}

		token, err := h.issuer.SignToken(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(internalErrorMessage, err))
			return
		}

		http.SetCookie(w, h.sessionCookie(token, int(h.issuer.TTL().Seconds())))
		h.responder.WriteJSON(w, loginResponse{
			Success: true,
			User: sessionUser{
				ID:    user.ID.String(),
				Email: user.Email,
				Role:  user.Role,
			},
		})
	}
}

// logout expires the cookie. Issued tokens stay valid until they expire.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessionCookie("", -1))
		h.responder.WriteJSON(w, successResponse{Success: true})
	}
}
