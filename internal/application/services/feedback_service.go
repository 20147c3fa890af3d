package services

import (
	"context"
	"strings"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/domain/repositories"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

// FeedbackService handles feedback submissions and reads.
type FeedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Create validates and stores feedback.
func (s *FeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if strings.TrimSpace(feedback.Message) == "" {
		return apperrors.NewValidationError("Missing required fields")
	}
	return s.repo.Create(ctx, feedback)
}

// List returns all feedback, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]*entities.Feedback, error) {
	return s.repo.List(ctx)
}

// GetByID returns the feedback with the given id.
func (s *FeedbackService) GetByID(ctx context.Context, id int64) (*entities.Feedback, error) {
	return s.repo.GetByID(ctx, id)
}
