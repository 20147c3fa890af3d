package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/domain/repositories"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

// FeedbackAdapter implements feedback persistence in Postgres.
type FeedbackAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFeedbackAdapter creates a new feedback adapter.
func NewFeedbackAdapter(client *postgres.Client) repositories.FeedbackRepository {
	return &FeedbackAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a feedback record. The id and creation timestamp are
// assigned by the store.
func (a *FeedbackAdapter) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewInternalError("feedback is nil", fmt.Errorf("feedback is nil"))
	}

	record := goqu.Record{
		"message": feedback.Message,
	}

	query, args, err := a.db.Insert("feedback").Rows(record).Returning("id", "created_at").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feedback insert query", err)
	}

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return apperrors.NewInternalError("failed to create feedback", err)
	}

	return nil
}

// GetByID retrieves a feedback record by id.
func (a *FeedbackAdapter) GetByID(ctx context.Context, id int64) (*entities.Feedback, error) {
	query, args, err := a.db.Select(
		"id", "message", "created_at",
	).From("feedback").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback query", err)
	}

	feedback := &entities.Feedback{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&feedback.ID,
		&feedback.Message,
		&feedback.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("feedback with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get feedback", err)
	}

	return feedback, nil
}

// List retrieves all feedback, newest first. The id is used as a
// tiebreak so repeated calls return a stable order.
func (a *FeedbackAdapter) List(ctx context.Context) ([]*entities.Feedback, error) {
	query, args, err := a.db.Select(
		"id", "message", "created_at",
	).From("feedback").
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list feedback", err)
	}
	defer rows.Close()

	var feedbacks []*entities.Feedback
	for rows.Next() {
		feedback := &entities.Feedback{}

		err := rows.Scan(
			&feedback.ID,
			&feedback.Message,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan feedback", err)
		}

		feedbacks = append(feedbacks, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate feedback", err)
	}

	return feedbacks, nil
}
