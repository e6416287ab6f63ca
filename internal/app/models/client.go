package models

import "time"

// Client represents a lead or contact owned by a realtor
type Client struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	RealtorID int64     `json:"realtorId" db:"realtor_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
