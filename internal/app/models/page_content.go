package models

import "time"

// PageContent is a generic CMS triple: (page, section, key) -> value.
// Uniqueness over the triple is enforced by the database so concurrent
// upserts cannot produce duplicates.
type PageContent struct {
	ID           int64     `json:"id" db:"id"`
	PageName     string    `json:"pageName" db:"page_name"`
	SectionName  string    `json:"sectionName" db:"section_name"`
	ContentKey   string    `json:"contentKey" db:"content_key"`
	ContentValue string    `json:"contentValue" db:"content_value"`
	ContentType  string    `json:"contentType" db:"content_type"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
