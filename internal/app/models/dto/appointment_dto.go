package dto

import "time"

// CreateAppointmentRequest is the payload for booking an appointment
type CreateAppointmentRequest struct {
	Title      string    `json:"title" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Location   string    `json:"location"`
	Notes      string    `json:"notes"`
	ClientID   *int64    `json:"clientId"`
	PropertyID *int64    `json:"propertyId"`
}
