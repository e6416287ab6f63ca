package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// ContentController handles CMS page content endpoints
type ContentController struct {
	contentService services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetPageContent handles retrieving all content triples for a page
// @Summary Get page content
// @Description Retrieves every content triple belonging to a page
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param pageName path string true "Page name"
// @Success 200 {object} dto.APIResponse{data=[]models.PageContent} "Content retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid page name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/{pageName}/content [get]
func (c *ContentController) GetPageContent(ctx *gin.Context) {
	items, err := c.contentService.GetPageContent(ctx, ctx.Param("pageName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// UpsertPageContent handles inserting or replacing content triples
// @Summary Upsert page content
// @Description Inserts or replaces one or many (page, section, key) content triples
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertPageContentRequest true "Content triples"
// @Success 200 {object} dto.APIResponse{data=[]models.PageContent} "Content saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages/content [put]
func (c *ContentController) UpsertPageContent(ctx *gin.Context) {
	var req dto.UpsertPageContentRequest
	if err := ctx.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		// A bare triple is accepted as a single-item batch.
		var item dto.PageContentItem
		if itemErr := ctx.ShouldBindBodyWith(&item, binding.JSON); itemErr != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
				WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		req.Items = []dto.PageContentItem{item}
	}

	items, err := c.contentService.UpsertPageContent(ctx, req.Items)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}
