package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

type appointmentStore interface {
	Create(ctx context.Context, a *models.Appointment) (int64, error)
	ListByRealtor(ctx context.Context, realtorID int64) ([]*models.Appointment, error)
	ListForWindow(ctx context.Context, realtorID int64, from, to time.Time) ([]*models.Appointment, error)
}

// AppointmentService defines the interface for appointment operations
type AppointmentService interface {
	CreateAppointment(ctx context.Context, actorID int64, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	ListAppointments(ctx context.Context, actorID int64) ([]*models.Appointment, error)
	TodaysAppointments(ctx context.Context, actorID int64) ([]*models.Appointment, error)
}

type appointmentServiceImpl struct {
	appointmentRepo appointmentStore
	activities      ActivityService

	// now is swapped out in tests
	now func() time.Time
}

// NewAppointmentService creates a new appointment service instance
func NewAppointmentService(appointmentRepo appointmentStore, activities ActivityService) AppointmentService {
	return &appointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		activities:      activities,
		now:             time.Now,
	}
}

// CreateAppointment books an appointment and records an "appointment" activity
func (s *appointmentServiceImpl) CreateAppointment(ctx context.Context, actorID int64, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}

	appointment := &models.Appointment{
		Title:      req.Title,
		Date:       req.Date,
		Location:   req.Location,
		Notes:      req.Notes,
		ClientID:   req.ClientID,
		PropertyID: req.PropertyID,
		RealtorID:  actorID,
	}

	if _, err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	s.activities.Record(ctx, &models.Activity{
		Type:        models.ActivityAppointment,
		Title:       "Appointment booked",
		Description: appointment.Title,
		UserID:      actorID,
		PropertyID:  appointment.PropertyID,
	})

	return appointment, nil
}

// ListAppointments retrieves the actor's appointments in insertion order
func (s *appointmentServiceImpl) ListAppointments(ctx context.Context, actorID int64) ([]*models.Appointment, error) {
	appointments, err := s.appointmentRepo.ListByRealtor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return appointments, nil
}

// TodaysAppointments retrieves appointments whose date falls within
// "today" in server-local time.
func (s *appointmentServiceImpl) TodaysAppointments(ctx context.Context, actorID int64) ([]*models.Appointment, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.ListForWindow(ctx, actorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing today's appointments: %w", err)
	}
	return appointments, nil
}
