package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	contactRequiredMessage = "Name, email, and message are required"
	contactFailedMessage   = "Failed to save message"
	contactSentMessage     = "Message sent successfully"
	maxContactBodyBytes    = 64 << 10
)

type messageStore interface {
	Add(ctx context.Context, message *models.ContactMessage) error
}

type messageNotifier interface {
	NotifyNewMessage(message models.ContactMessage)
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     messageStore
	notifier  messageNotifier
}

func newContactHandler(store messageStore, notifier messageNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		notifier:  notifier,
	}
}

// submit stores a contact form message as unread. Nothing is stored when a
// required field is blank.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBodyBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		name := strings.TrimSpace(req.Name)
		email := strings.TrimSpace(req.Email)
		body := strings.TrimSpace(req.Message)
		if field := firstBlank("name", name, "email", email, "message", body); field != "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field, contactRequiredMessage))
			return
		}

		subject := strings.TrimSpace(req.Subject)
		if subject == "" {
			subject = models.DefaultContactSubject
		}

		message := &models.ContactMessage{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: body,
			Status:  models.ContactStatusUnread,
		}
		if err := h.store.Add(r.Context(), message); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause(contactFailedMessage, err))
			return
		}

		h.logger.Info().Str("messageId", message.ID.String()).Msg("contact message stored")
		if h.notifier != nil {
			h.notifier.NotifyNewMessage(*message)
		}

		h.responder.WriteJSON(w, contactResponse{Success: true, Message: contactSentMessage})
	}
}

// firstBlank takes name/value pairs and returns the first name whose value is empty.
func firstBlank(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return pairs[i]
		}
	}
	return ""
}
