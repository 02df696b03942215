package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMessageStore struct {
	mock.Mock
}

func (m *mockMessageStore) Add(ctx context.Context, message *models.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyNewMessage(message models.ContactMessage) {
	m.Called(message)
}

func TestContactHandler_Submit(t *testing.T) {
	store := new(mockMessageStore)
	notifier := new(mockNotifier)
	id := uuid.New()

	store.On("Add", mock.Anything, mock.MatchedBy(func(m *models.ContactMessage) bool {
		return m.Name == "Ada" &&
			m.Email == "ada@example.com" &&
			m.Subject == models.DefaultContactSubject &&
			m.Message == "Let's build a model" &&
			m.Status == models.ContactStatusUnread
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.ContactMessage).ID = id
	}).Return(nil).Once()
	notifier.On("NotifyNewMessage", mock.MatchedBy(func(m models.ContactMessage) bool {
		return m.ID == id
	})).Return().Once()

	handler := newContactHandler(store, notifier)
	rec := httptest.NewRecorder()
	handler.submit()(rec, jsonRequest(http.MethodPost, "/api/contact",
		`{"name":" Ada ","email":"ada@example.com","message":"Let's build a model"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body contactResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, contactResponse{Success: true, Message: "Message sent successfully"}, body)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestContactHandler_SubmitKeepsSubject(t *testing.T) {
	store := new(mockMessageStore)
	store.On("Add", mock.Anything, mock.MatchedBy(func(m *models.ContactMessage) bool {
		return m.Subject == "Consulting"
	})).Return(nil).Once()

	rec := httptest.NewRecorder()
	newContactHandler(store, nil).submit()(rec, jsonRequest(http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@example.com","subject":"Consulting","message":"Hi"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestContactHandler_SubmitMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"no name", `{"email":"ada@example.com","message":"Hi"}`, "name"},
		{"no email", `{"name":"Ada","message":"Hi"}`, "email"},
		{"no message", `{"name":"Ada","email":"ada@example.com"}`, "message"},
		{"blank message", `{"name":"Ada","email":"ada@example.com","message":"   "}`, "message"},
		{"empty object", `{}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockMessageStore)
			rec := httptest.NewRecorder()

			newContactHandler(store, nil).submit()(rec, jsonRequest(http.MethodPost, "/api/contact", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, "Name, email, and message are required", body.Error)
			assert.Equal(t, tt.field, body.Field)
			store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestContactHandler_SubmitMalformedJSON(t *testing.T) {
	store := new(mockMessageStore)
	rec := httptest.NewRecorder()

	newContactHandler(store, nil).submit()(rec, jsonRequest(http.MethodPost, "/api/contact", `{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestContactHandler_SubmitStoreFailure(t *testing.T) {
	store := new(mockMessageStore)
	notifier := new(mockNotifier)
	store.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed: connection reset"))

	rec := httptest.NewRecorder()
	newContactHandler(store, notifier).submit()(rec, jsonRequest(http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@example.com","message":"Hi"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Failed to save message", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	notifier.AssertNotCalled(t, "NotifyNewMessage", mock.Anything)
}
