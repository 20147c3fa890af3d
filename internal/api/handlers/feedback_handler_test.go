package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/majisafi/waterdelivery/backend/internal/api/handlers"
	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

type stubFeedbackService struct {
	created   []*entities.Feedback
	feedbacks []*entities.Feedback
	getCalls  int
}

func (s *stubFeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if strings.TrimSpace(feedback.Message) == "" {
		return apperrors.NewValidationError("Missing required fields")
	}
	feedback.ID = int64(len(s.created) + 1)
	feedback.CreatedAt = time.Now().UTC()
	s.created = append(s.created, feedback)
	return nil
}

func (s *stubFeedbackService) List(ctx context.Context) ([]*entities.Feedback, error) {
	return s.feedbacks, nil
}

func (s *stubFeedbackService) GetByID(ctx context.Context, id int64) (*entities.Feedback, error) {
	s.getCalls++
	for _, feedback := range s.feedbacks {
		if feedback.ID == id {
			return feedback, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("feedback with id %d not found", id))
}

func TestFeedbackHandler_SubmitFeedback_Success(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service)

	body := `{"message":"Water arrived late"}`
	req := httptest.NewRequest("POST", "/feedback", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.created, 1)

	var response struct {
		Message  string            `json:"message"`
		Feedback entities.Feedback `json:"feedback"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Feedback created", response.Message)
	assert.Equal(t, "Water arrived late", response.Feedback.Message)
	assert.NotZero(t, response.Feedback.ID)
}

func TestFeedbackHandler_SubmitFeedback_EmptyMessage(t *testing.T) {
	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		service := &stubFeedbackService{}
		handler := handlers.NewFeedbackHandler(service)

		req := httptest.NewRequest("POST", "/feedback", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.SubmitFeedback(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.created)

		var response map[string]string
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, "Missing required fields", response["message"])
	}
}

func TestFeedbackHandler_GetFeedback_InvalidID(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service)

	req := httptest.NewRequest("GET", "/feedback/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.GetFeedback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The store must not be touched for a non-numeric id.
	assert.Zero(t, service.getCalls)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid id", response["message"])
}

func TestFeedbackHandler_GetFeedback_NotFound(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service)

	req := httptest.NewRequest("GET", "/feedback/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	handler.GetFeedback(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, service.getCalls)
}

func TestFeedbackHandler_GetFeedback_Found(t *testing.T) {
	service := &stubFeedbackService{feedbacks: []*entities.Feedback{
		{ID: 5, Message: "Great service", CreatedAt: time.Now().UTC()},
	}}
	handler := handlers.NewFeedbackHandler(service)

	req := httptest.NewRequest("GET", "/feedback/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	handler.GetFeedback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Feedback entities.Feedback `json:"feedback"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), response.Feedback.ID)
	assert.Equal(t, "Great service", response.Feedback.Message)
}

func TestFeedbackHandler_ListFeedbacks(t *testing.T) {
	now := time.Now().UTC()
	service := &stubFeedbackService{feedbacks: []*entities.Feedback{
		{ID: 2, Message: "second", CreatedAt: now},
		{ID: 1, Message: "first", CreatedAt: now.Add(-time.Hour)},
	}}
	handler := handlers.NewFeedbackHandler(service)

	req := httptest.NewRequest("GET", "/feedback", nil)
	w := httptest.NewRecorder()

	handler.ListFeedbacks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Feedbacks []entities.Feedback `json:"feedbacks"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Feedbacks, 2)
	assert.Equal(t, "second", response.Feedbacks[0].Message)
}
