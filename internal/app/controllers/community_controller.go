package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// CommunityController handles community endpoints
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

// ListCommunities handles retrieving the seeded communities
// @Summary List communities
// @Description Retrieves the marketing community records
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Community} "Communities retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities [get]
func (c *CommunityController) ListCommunities(ctx *gin.Context) {
	communities, err := c.communityService.ListCommunities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(communities))
}
