package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// ClientController handles lead endpoints
type ClientController struct {
	clientService services.ClientService
}

// NewClientController creates a new ClientController
func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{
		clientService: clientService,
	}
}

// ListClients handles retrieving the actor's leads
// @Summary List clients
// @Description Retrieves the authenticated user's leads in insertion order
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Client} "Clients retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clients [get]
func (c *ClientController) ListClients(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	clients, err := c.clientService.ListClients(ctx, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clients))
}

// CreateClient handles adding a lead
// @Summary Create client
// @Description Adds a new lead for the authenticated user
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClientRequest true "Lead data"
// @Success 201 {object} dto.APIResponse{data=models.Client} "Client created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clients [post]
func (c *ClientController) CreateClient(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	client, err := c.clientService.CreateClient(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(client))
}
