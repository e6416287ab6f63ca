package models

import "time"

// WebsiteTheme is a named theme record. At most one theme is active at
// a time; activation is transactional.
type WebsiteTheme struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
