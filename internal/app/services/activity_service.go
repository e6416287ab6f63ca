package services

import (
	"context"
	"fmt"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

type activityStore interface {
	Create(ctx context.Context, a *models.Activity) (int64, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]*models.Activity, error)
}

// ActivityService records and reads the append-only audit log
type ActivityService interface {
	// Record appends an audit entry. Recording is best-effort: the
	// audit log is advisory, so failures are logged and swallowed
	// rather than failing the mutation that triggered them.
	Record(ctx context.Context, activity *models.Activity)
	Recent(ctx context.Context, userID int64, limit int) ([]*models.Activity, error)
}

type activityServiceImpl struct {
	activityRepo activityStore
	logger       zerolog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(activityRepo activityStore, logger zerolog.Logger) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record appends an audit entry, best-effort
func (s *activityServiceImpl) Record(ctx context.Context, activity *models.Activity) {
	if _, err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn().
			Err(err).
			Str("type", activity.Type).
			Int64("userId", activity.UserID).
			Msg("Failed to record activity")
	}
}

// Recent retrieves the most recent limit activities for a user
func (s *activityServiceImpl) Recent(ctx context.Context, userID int64, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidationFailed)
	}

	activities, err := s.activityRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}
	return activities, nil
}
