package models

import "time"

// ThemeSettings is the per-scope bag of color and font configuration
// consumed by every rendering surface as CSS variables. One row per
// user scope, lazily created with defaults on first read.
type ThemeSettings struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	PrimaryColor    string    `json:"primaryColor" db:"primary_color"`
	SecondaryColor  string    `json:"secondaryColor" db:"secondary_color"`
	AccentColor     string    `json:"accentColor" db:"accent_color"`
	BackgroundColor string    `json:"backgroundColor" db:"background_color"`
	TextColor       string    `json:"textColor" db:"text_color"`
	HeadingFont     string    `json:"headingFont" db:"heading_font"`
	BodyFont        string    `json:"bodyFont" db:"body_font"`
	BorderRadius    string    `json:"borderRadius" db:"border_radius"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultThemeSettings returns the fixed default palette and typography
// used when a scope has no stored settings yet.
func DefaultThemeSettings(userID int64) *ThemeSettings {
	return &ThemeSettings{
		UserID:          userID,
		PrimaryColor:    "#2C3E50",
		SecondaryColor:  "#18BC9C",
		AccentColor:     "#E74C3C",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#212529",
		HeadingFont:     "Playfair Display",
		BodyFont:        "Open Sans",
		BorderRadius:    "0.5rem",
	}
}
