package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
)

// FeedbackService defines the feedback operations used by the handler.
type FeedbackService interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
	List(ctx context.Context) ([]*entities.Feedback, error)
	GetByID(ctx context.Context, id int64) (*entities.Feedback, error)
}

// FeedbackHandler handles feedback-related HTTP requests.
type FeedbackHandler struct {
	service FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(service FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type feedbackRequest struct {
	Message string `json:"message"`
}

// SubmitFeedback handles POST /feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var payload feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback := &entities.Feedback{
		Message: strings.TrimSpace(payload.Message),
	}

	if err := h.service.Create(r.Context(), feedback); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Feedback created",
		"feedback": feedback,
	})
}

// ListFeedbacks handles GET /feedback
func (h *FeedbackHandler) ListFeedbacks(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if feedbacks == nil {
		feedbacks = []*entities.Feedback{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"feedbacks": feedbacks,
	})
}

// GetFeedback handles GET /feedback/{id}
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	// The id is validated before any store access.
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	feedback, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"feedback": feedback,
	})
}
