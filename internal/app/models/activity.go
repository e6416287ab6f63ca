package models

import "time"

// Activity type tags recorded as side effects of other mutations
const (
	ActivityListing        = "listing"
	ActivityPropertyUpdate = "property_update"
	ActivityPropertyDelete = "property_delete"
	ActivityLead           = "lead"
	ActivityMessage        = "message"
	ActivityAppointment    = "appointment"
)

// Activity is an append-only audit entry. Never updated or deleted.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	UserID      int64     `json:"userId" db:"user_id"`
	PropertyID  *int64    `json:"propertyId,omitempty" db:"property_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
