package models

import "time"

// Property listing status values
const (
	PropertyStatusActive  = "Active"
	PropertyStatusPending = "Pending"
	PropertyStatusSold    = "Sold"
	PropertyStatusDraft   = "Draft"
)

// Property listing type values
const (
	PropertyTypeForSale = "for-sale"
	PropertyTypeForRent = "for-rent"
)

// Property represents a real-estate listing owned by a realtor.
// Price is stored in whole currency units. Images is the ordered photo
// sequence; MainImage mirrors the canonical cover asset (images[0]).
type Property struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Address       string    `json:"address" db:"address"`
	City          string    `json:"city" db:"city"`
	State         string    `json:"state" db:"state"`
	ZipCode       string    `json:"zipCode" db:"zip_code"`
	Price         int64     `json:"price" db:"price"`
	Bedrooms      int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms     float64   `json:"bathrooms" db:"bathrooms"`
	SquareFeet    int       `json:"squareFeet" db:"square_feet"`
	LotSize       int       `json:"lotSize" db:"lot_size"`
	YearBuilt     int       `json:"yearBuilt" db:"year_built"`
	ParkingSpaces string    `json:"parkingSpaces" db:"parking_spaces"`
	Description   string    `json:"description" db:"description"`
	Type          string    `json:"type" db:"type"`
	Status        string    `json:"status" db:"status"`
	MainImage     string    `json:"mainImage" db:"main_image"`
	Images        []string  `json:"images" db:"images"`
	Features      []string  `json:"features" db:"features"`
	ListedByID    int64     `json:"listedById" db:"listed_by_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// IsValidPropertyStatus reports whether s is a known listing status
func IsValidPropertyStatus(s string) bool {
	switch s {
	case PropertyStatusActive, PropertyStatusPending, PropertyStatusSold, PropertyStatusDraft:
		return true
	}
	return false
}

// IsValidPropertyType reports whether t is a known listing type
func IsValidPropertyType(t string) bool {
	return t == PropertyTypeForSale || t == PropertyTypeForRent
}
