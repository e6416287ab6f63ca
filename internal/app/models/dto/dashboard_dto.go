package dto

import "github.com/oakfield/realty/internal/app/models"

// Statistics is the status partition of a realtor's portfolio plus the
// trailing-7-day lead count. Draft listings are counted in none of the
// three buckets.
type Statistics struct {
	ActiveListings int `json:"activeListings"`
	PendingSales   int `json:"pendingSales"`
	ClosedSales    int `json:"closedSales"`
	NewLeads       int `json:"newLeads"`
}

// DashboardResponse is the composite read model for GET /dashboard
type DashboardResponse struct {
	PortfolioValue     int64                 `json:"portfolioValue"`
	Statistics         Statistics            `json:"statistics"`
	RecentActivities   []*models.Activity    `json:"recentActivities"`
	TodaysAppointments []*models.Appointment `json:"todaysAppointments"`
}
