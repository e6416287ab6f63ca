package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// ThemeController handles theme configuration endpoints
type ThemeController struct {
	themeService services.ThemeService
}

// NewThemeController creates a new ThemeController
func NewThemeController(themeService services.ThemeService) *ThemeController {
	return &ThemeController{
		themeService: themeService,
	}
}

// GetThemeSettings handles retrieving a scope's theme settings
// @Summary Get theme settings
// @Description Retrieves the theme settings for a scope, creating the default palette on first read
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param scopeId path int true "Scope ID"
// @Success 200 {object} dto.APIResponse{data=models.ThemeSettings} "Settings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid scope ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /theme-settings/{scopeId} [get]
func (c *ThemeController) GetThemeSettings(ctx *gin.Context) {
	scopeID, err := strconv.ParseInt(ctx.Param("scopeId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scope ID").
			WithDetails("Scope ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings, err := c.themeService.GetThemeSettings(ctx, scopeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// UpdateThemeSettings handles partially updating a scope's theme settings
// @Summary Update theme settings
// @Description Merges the provided fields over the scope's current settings and returns the full result
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scopeId path int true "Scope ID"
// @Param request body dto.UpdateThemeSettingsRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.ThemeSettings} "Settings updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /theme-settings/{scopeId} [put]
func (c *ThemeController) UpdateThemeSettings(ctx *gin.Context) {
	scopeID, err := strconv.ParseInt(ctx.Param("scopeId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scope ID").
			WithDetails("Scope ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateThemeSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings, err := c.themeService.UpdateThemeSettings(ctx, scopeID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// ListWebsiteThemes handles retrieving all theme records
// @Summary List website themes
// @Description Retrieves all website theme records
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.WebsiteTheme} "Themes retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /website-themes [get]
func (c *ThemeController) ListWebsiteThemes(ctx *gin.Context) {
	themes, err := c.themeService.ListWebsiteThemes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(themes))
}

// CreateWebsiteTheme handles creating a theme record
// @Summary Create website theme
// @Description Creates a new named theme record, inactive by default
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWebsiteThemeRequest true "Theme data"
// @Success 201 {object} dto.APIResponse{data=models.WebsiteTheme} "Theme created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 409 {object} dto.ErrorResponse "Theme name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /website-themes [post]
func (c *ThemeController) CreateWebsiteTheme(ctx *gin.Context) {
	var req dto.CreateWebsiteThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	theme, err := c.themeService.CreateWebsiteTheme(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(theme))
}

// GetActiveWebsiteTheme handles retrieving the single active theme
// @Summary Get active website theme
// @Description Retrieves the currently active theme record
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.WebsiteTheme} "Active theme retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "No active theme configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /website-themes/active [get]
func (c *ThemeController) GetActiveWebsiteTheme(ctx *gin.Context) {
	theme, err := c.themeService.GetActiveWebsiteTheme(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(theme))
}

// ActivateWebsiteTheme handles switching the active theme
// @Summary Activate website theme
// @Description Atomically makes the given theme the only active one
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Theme ID"
// @Success 200 {object} dto.APIResponse{data=models.WebsiteTheme} "Theme activated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid theme ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Theme not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /website-themes/{id}/activate [put]
func (c *ThemeController) ActivateWebsiteTheme(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid theme ID").
			WithDetails("Theme ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	theme, err := c.themeService.SetActiveWebsiteTheme(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(theme))
}
