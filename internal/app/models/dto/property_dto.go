package dto

// CreatePropertyRequest is the payload for creating a listing
type CreatePropertyRequest struct {
	Title         string   `json:"title" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	State         string   `json:"state" binding:"required"`
	ZipCode       string   `json:"zipCode"`
	Price         int64    `json:"price" binding:"required,gte=0"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     float64  `json:"bathrooms" binding:"gte=0"`
	SquareFeet    int      `json:"squareFeet" binding:"gte=0"`
	LotSize       int      `json:"lotSize"`
	YearBuilt     int      `json:"yearBuilt"`
	ParkingSpaces string   `json:"parkingSpaces"`
	Description   string   `json:"description"`
	Type          string   `json:"type" binding:"required"`
	Status        string   `json:"status"`
	MainImage     string   `json:"mainImage"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
}

// UpdatePropertyRequest is the partial-update payload for a listing.
// Nil fields were absent from the request body and leave the stored
// value untouched; present fields replace it.
type UpdatePropertyRequest struct {
	Title         *string   `json:"title"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	ZipCode       *string   `json:"zipCode"`
	Price         *int64    `json:"price"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *float64  `json:"bathrooms"`
	SquareFeet    *int      `json:"squareFeet"`
	LotSize       *int      `json:"lotSize"`
	YearBuilt     *int      `json:"yearBuilt"`
	ParkingSpaces *string   `json:"parkingSpaces"`
	Description   *string   `json:"description"`
	Type          *string   `json:"type"`
	Status        *string   `json:"status"`
	MainImage     *string   `json:"mainImage"`
	Images        []string  `json:"images"`
	Features      []string  `json:"features"`
	ListedByID    *int64    `json:"listedById"`
}

// PropertyFilter carries the optional query filters for listing properties
type PropertyFilter struct {
	Status      string `form:"status"`
	Type        string `form:"type"`
	MinPrice    int64  `form:"minPrice"`
	MaxPrice    int64  `form:"maxPrice"`
	MinBedrooms int    `form:"minBedrooms"`
}
