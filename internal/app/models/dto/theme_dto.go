package dto

// UpdateThemeSettingsRequest is the partial upsert payload for a scope's
// theme settings. Nil fields keep the stored (or default) value.
type UpdateThemeSettingsRequest struct {
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	AccentColor     *string `json:"accentColor"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	HeadingFont     *string `json:"headingFont"`
	BodyFont        *string `json:"bodyFont"`
	BorderRadius    *string `json:"borderRadius"`
}

// CreateWebsiteThemeRequest is the payload for creating a theme record
type CreateWebsiteThemeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
