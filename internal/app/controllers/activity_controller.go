package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

const defaultActivityLimit = 10

// ActivityController handles audit log endpoints
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// RecentActivities handles retrieving the actor's recent activities
// @Summary Recent activities
// @Description Retrieves the authenticated user's most recent activities, newest first
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Activity} "Activities retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) RecentActivities(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	limit := defaultActivityLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").
				WithDetails("Limit must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	activities, err := c.activityService.Recent(ctx, actorID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activities))
}
