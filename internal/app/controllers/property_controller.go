package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// PropertyController handles listing endpoints
type PropertyController struct {
	propertyService services.PropertyService
}

// NewPropertyController creates a new PropertyController
func NewPropertyController(propertyService services.PropertyService) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
	}
}

// ListProperties handles retrieving the actor's listings
// @Summary List properties
// @Description Retrieves the authenticated user's listings with optional filters
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param minBedrooms query int false "Minimum bedroom count"
// @Success 200 {object} dto.APIResponse{data=[]models.Property} "Properties retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties [get]
func (c *PropertyController) ListProperties(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	var filter dto.PropertyFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	properties, err := c.propertyService.ListProperties(ctx, actorID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(properties))
}

// GetPropertyByID handles retrieving a single listing
// @Summary Get property by ID
// @Description Retrieves a specific listing by its ID
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} dto.APIResponse{data=models.Property} "Property retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid property ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [get]
func (c *PropertyController) GetPropertyByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid property ID").
			WithDetails("Property ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	property, err := c.propertyService.GetPropertyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(property))
}

// CreateProperty handles creating a listing
// @Summary Create property
// @Description Creates a new listing owned by the authenticated user
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePropertyRequest true "Listing data"
// @Success 201 {object} dto.APIResponse{data=models.Property} "Property created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties [post]
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	property, err := c.propertyService.CreateProperty(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(property))
}

// UpdateProperty handles partial updates of a listing. PUT and PATCH
// are both routed here and share the same merge semantics.
// @Summary Update property
// @Description Applies a partial update to a listing the authenticated user owns. Absent fields retain their stored values.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Property} "Property updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ownership change attempt"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Property belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [patch]
func (c *PropertyController) UpdateProperty(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid property ID").
			WithDetails("Property ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	property, err := c.propertyService.UpdateProperty(ctx, actorID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(property))
}

// DeleteProperty handles removing a listing
// @Summary Delete property
// @Description Removes a listing the authenticated user owns
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Property deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid property ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Property belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [delete]
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid property ID").
			WithDetails("Property ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.propertyService.DeleteProperty(ctx, actorID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Property deleted successfully"}))
}
