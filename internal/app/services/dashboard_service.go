package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
)

// newLeadWindow is the trailing window a client counts as a new lead
const newLeadWindow = 7 * 24 * time.Hour

// DashboardService computes read-only summaries over the actor's data.
// Everything is recomputed on every call; the row counts involved are
// small enough that caching would only add staleness.
type DashboardService interface {
	PortfolioValue(ctx context.Context, actorID int64) (int64, error)
	Statistics(ctx context.Context, actorID int64) (*dto.Statistics, error)
	Dashboard(ctx context.Context, actorID int64) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	propertyRepo propertyStore
	clientRepo   clientStore
	activities   ActivityService
	appointments AppointmentService

	now func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	propertyRepo propertyStore,
	clientRepo clientStore,
	activities ActivityService,
	appointments AppointmentService,
) DashboardService {
	return &dashboardServiceImpl{
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		activities:   activities,
		appointments: appointments,
		now:          time.Now,
	}
}

// PortfolioValue sums the listing prices of the actor's properties
func (s *dashboardServiceImpl) PortfolioValue(ctx context.Context, actorID int64) (int64, error) {
	properties, err := s.propertyRepo.ListByOwner(ctx, actorID, nil)
	if err != nil {
		return 0, fmt.Errorf("error computing portfolio value: %w", err)
	}
	return SumPortfolio(properties), nil
}

// Statistics partitions the actor's listings by status and counts
// trailing-7-day leads.
func (s *dashboardServiceImpl) Statistics(ctx context.Context, actorID int64) (*dto.Statistics, error) {
	properties, err := s.propertyRepo.ListByOwner(ctx, actorID, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving properties: %w", err)
	}

	clients, err := s.clientRepo.ListByRealtor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clients: %w", err)
	}

	stats := PartitionByStatus(properties)
	stats.NewLeads = CountNewLeads(clients, s.now())
	return stats, nil
}

// Dashboard assembles the composite dashboard read model
func (s *dashboardServiceImpl) Dashboard(ctx context.Context, actorID int64) (*dto.DashboardResponse, error) {
	portfolioValue, err := s.PortfolioValue(ctx, actorID)
	if err != nil {
		return nil, err
	}

	stats, err := s.Statistics(ctx, actorID)
	if err != nil {
		return nil, err
	}

	recent, err := s.activities.Recent(ctx, actorID, 5)
	if err != nil {
		return nil, err
	}

	todays, err := s.appointments.TodaysAppointments(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		PortfolioValue:     portfolioValue,
		Statistics:         *stats,
		RecentActivities:   recent,
		TodaysAppointments: todays,
	}, nil
}

// SumPortfolio sums listing prices
func SumPortfolio(properties []*models.Property) int64 {
	var total int64
	for _, p := range properties {
		total += p.Price
	}
	return total
}

// PartitionByStatus counts listings per sales bucket. Draft listings
// belong to no bucket.
func PartitionByStatus(properties []*models.Property) *dto.Statistics {
	stats := &dto.Statistics{}
	for _, p := range properties {
		switch p.Status {
		case models.PropertyStatusActive:
			stats.ActiveListings++
		case models.PropertyStatusPending:
			stats.PendingSales++
		case models.PropertyStatusSold:
			stats.ClosedSales++
		}
	}
	return stats
}

// CountNewLeads counts clients created within the trailing lead window,
// inclusive of now.
func CountNewLeads(clients []*models.Client, now time.Time) int {
	cutoff := now.Add(-newLeadWindow)
	count := 0
	for _, c := range clients {
		if !c.CreatedAt.Before(cutoff) && !c.CreatedAt.After(now) {
			count++
		}
	}
	return count
}
