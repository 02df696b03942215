package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHandler_EmptyListsAreArrays(t *testing.T) {
	h := newContentHandler(stubProjects{}, stubNotes{}, stubCategories{}, stubVideos{})

	for name, handler := range map[string]http.HandlerFunc{
		"projects":   h.getAllProjects(),
		"notes":      h.getAllNotes(),
		"categories": h.getAllCategories(),
		"videos":     h.getAllVideos(),
	} {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/api/"+name, nil))

		assert.Equal(t, http.StatusOK, rec.Code, name)
		assert.JSONEq(t, `[]`, rec.Body.String(), name)
	}
}

func TestContentHandler_GetAllVideos(t *testing.T) {
	id := uuid.New()
	h := newContentHandler(stubProjects{}, stubNotes{}, stubCategories{}, stubVideos{items: []*models.Video{
		{ID: id, Title: "Career in AI", VideoURL: "https://youtu.be/x", Views: 42},
	}})

	rec := httptest.NewRecorder()
	h.getAllVideos()(rec, httptest.NewRequest(http.MethodGet, "/api/videos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var videos []models.Video
	decodeBody(t, rec, &videos)
	require.Len(t, videos, 1)
	assert.Equal(t, id, videos[0].ID)
	assert.Equal(t, int64(42), videos[0].Views)
}

func TestContentHandler_StoreFailure(t *testing.T) {
	h := newContentHandler(stubProjects{err: errors.New("syntax error")}, stubNotes{}, stubCategories{}, stubVideos{})

	rec := httptest.NewRecorder()
	h.getAllProjects()(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "database query failed", body.Error)
	assert.Equal(t, "Failed to find projects", body.Details)
}

func TestContentHandler_GetNote(t *testing.T) {
	id := uuid.New()
	h := newContentHandler(stubProjects{}, stubNotes{byID: map[uuid.UUID]*models.Note{
		id: {ID: id, Title: "Attention", Content: "# Attention"},
	}}, stubCategories{}, stubVideos{})

	t.Run("found", func(t *testing.T) {
		rec := serve("/api/notes/{noteID}", h.getNote(), "/api/notes/"+id.String())

		require.Equal(t, http.StatusOK, rec.Code)
		var note models.Note
		decodeBody(t, rec, &note)
		assert.Equal(t, "Attention", note.Title)
	})

	t.Run("missing", func(t *testing.T) {
		rec := serve("/api/notes/{noteID}", h.getNote(), "/api/notes/"+uuid.NewString())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "note not found", body.Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := serve("/api/notes/{noteID}", h.getNote(), "/api/notes/abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body ErrorResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, "invalid field", body.Error)
		assert.Equal(t, "noteID", body.Field)
	})

	t.Run("store error", func(t *testing.T) {
		failing := newContentHandler(stubProjects{}, stubNotes{err: errors.New("timeout")}, stubCategories{}, stubVideos{})
		rec := serve("/api/notes/{noteID}", failing.getNote(), "/api/notes/"+id.String())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
