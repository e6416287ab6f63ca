package services

import (
	"context"
	"testing"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentValidation(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentStore(), &fakeActivities{})
	ctx := context.Background()

	_, err := svc.CreateAppointment(ctx, 1, &dto.CreateAppointmentRequest{Title: "  ", Date: time.Now()})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateAppointment(ctx, 1, &dto.CreateAppointmentRequest{Title: "Showing"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateAppointmentRecordsActivity(t *testing.T) {
	activities := &fakeActivities{}
	svc := NewAppointmentService(newFakeAppointmentStore(), activities)

	propertyID := int64(9)
	appointment, err := svc.CreateAppointment(context.Background(), 1, &dto.CreateAppointmentRequest{
		Title:      "Open house",
		Date:       time.Now().Add(24 * time.Hour),
		PropertyID: &propertyID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), appointment.RealtorID)

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, models.ActivityAppointment, activities.recorded[0].Type)
	require.NotNil(t, activities.recorded[0].PropertyID)
	assert.Equal(t, propertyID, *activities.recorded[0].PropertyID)
}

func TestTodaysAppointmentsWindow(t *testing.T) {
	store := newFakeAppointmentStore()
	activities := &fakeActivities{}

	fixed := time.Date(2025, 6, 8, 15, 30, 0, 0, time.UTC)
	svc := &appointmentServiceImpl{
		appointmentRepo: store,
		activities:      activities,
		now:             func() time.Time { return fixed },
	}
	ctx := context.Background()

	startOfDay := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	for _, a := range []*models.Appointment{
		{Title: "midnight", Date: startOfDay, RealtorID: 1},
		{Title: "evening", Date: startOfDay.Add(23*time.Hour + 59*time.Minute), RealtorID: 1},
		{Title: "tomorrow", Date: startOfDay.AddDate(0, 0, 1), RealtorID: 1},
		{Title: "yesterday", Date: startOfDay.Add(-time.Minute), RealtorID: 1},
		{Title: "other realtor", Date: startOfDay.Add(time.Hour), RealtorID: 2},
	} {
		_, err := store.Create(ctx, a)
		require.NoError(t, err)
	}

	todays, err := svc.TodaysAppointments(ctx, 1)
	require.NoError(t, err)

	titles := make([]string, 0, len(todays))
	for _, a := range todays {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"midnight", "evening"}, titles)
}
