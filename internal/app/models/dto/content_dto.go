package dto

// PageContentItem is one (page, section, key) -> value triple
type PageContentItem struct {
	PageName     string `json:"pageName" binding:"required"`
	SectionName  string `json:"sectionName" binding:"required"`
	ContentKey   string `json:"contentKey" binding:"required"`
	ContentValue string `json:"contentValue"`
	ContentType  string `json:"contentType"`
}

// UpsertPageContentRequest accepts one or many triples. A body that is
// a single object binds Item; a JSON array binds Items.
type UpsertPageContentRequest struct {
	Items []PageContentItem `json:"items" binding:"required,min=1,dive"`
}
