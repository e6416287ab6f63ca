package models

// Community is read-only marketing content, seeded at bootstrap
type Community struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	Image    string `json:"image" db:"image"`
}
