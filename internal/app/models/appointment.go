package models

import "time"

// Appointment represents a scheduled event. Client and property
// references are optional and not cascaded; an appointment may outlive
// the property it points at.
type Appointment struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Date       time.Time `json:"date" db:"date"`
	Location   string    `json:"location" db:"location"`
	Notes      string    `json:"notes" db:"notes"`
	ClientID   *int64    `json:"clientId,omitempty" db:"client_id"`
	PropertyID *int64    `json:"propertyId,omitempty" db:"property_id"`
	RealtorID  int64     `json:"realtorId" db:"realtor_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
