package services

import (
	"context"
	"testing"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPortfolio(t *testing.T) {
	properties := []*models.Property{
		{Price: 100},
		{Price: 250},
		{Price: 0},
	}
	assert.Equal(t, int64(350), SumPortfolio(properties))
	assert.Equal(t, int64(0), SumPortfolio(nil))
}

func TestPartitionByStatus(t *testing.T) {
	properties := []*models.Property{
		{Status: models.PropertyStatusActive},
		{Status: models.PropertyStatusActive},
		{Status: models.PropertyStatusPending},
		{Status: models.PropertyStatusSold},
		{Status: models.PropertyStatusDraft},
	}

	stats := PartitionByStatus(properties)
	assert.Equal(t, 2, stats.ActiveListings)
	assert.Equal(t, 1, stats.PendingSales)
	assert.Equal(t, 1, stats.ClosedSales)
}

func TestCountNewLeadsWindow(t *testing.T) {
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	clients := []*models.Client{
		{CreatedAt: now},                              // right on the upper bound
		{CreatedAt: now.Add(-7 * 24 * time.Hour)},     // right on the cutoff
		{CreatedAt: now.Add(-7*24*time.Hour - time.Second)}, // just outside
		{CreatedAt: now.Add(-time.Hour)},
	}

	assert.Equal(t, 3, CountNewLeads(clients, now))
}

func TestDashboardComposition(t *testing.T) {
	ctx := context.Background()
	propertyStore := newFakePropertyStore()
	clientStore := newFakeClientStore()
	appointmentStore := newFakeAppointmentStore()
	activities := &fakeActivities{}

	appointmentSvc := NewAppointmentService(appointmentStore, activities)
	svc := NewDashboardService(propertyStore, clientStore, activities, appointmentSvc)

	for _, p := range []*models.Property{
		{Status: models.PropertyStatusActive, Price: 100000, ListedByID: 1},
		{Status: models.PropertyStatusSold, Price: 250000, ListedByID: 1},
		{Status: models.PropertyStatusActive, Price: 999999, ListedByID: 2}, // other realtor
	} {
		_, err := propertyStore.Create(ctx, p)
		require.NoError(t, err)
	}

	_, err := clientStore.Create(ctx, &models.Client{Name: "Fresh Lead", RealtorID: 1, CreatedAt: time.Now()})
	require.NoError(t, err)

	_, err = appointmentStore.Create(ctx, &models.Appointment{
		Title:     "Showing",
		Date:      time.Now().Add(time.Hour),
		RealtorID: 1,
	})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		activities.Record(ctx, &models.Activity{Type: models.ActivityListing, UserID: 1})
	}

	dashboard, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(350000), dashboard.PortfolioValue)
	assert.Equal(t, 1, dashboard.Statistics.ActiveListings)
	assert.Equal(t, 1, dashboard.Statistics.ClosedSales)
	assert.Equal(t, 1, dashboard.Statistics.NewLeads)
	assert.Len(t, dashboard.RecentActivities, 5)
	assert.Len(t, dashboard.TodaysAppointments, 1)
}

func TestStatisticsDraftNotCounted(t *testing.T) {
	ctx := context.Background()
	propertyStore := newFakePropertyStore()
	clientStore := newFakeClientStore()
	activities := &fakeActivities{}
	svc := NewDashboardService(propertyStore, clientStore, activities, NewAppointmentService(newFakeAppointmentStore(), activities))

	_, err := propertyStore.Create(ctx, &models.Property{Status: models.PropertyStatusDraft, ListedByID: 1})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &dto.Statistics{}, stats)
}
