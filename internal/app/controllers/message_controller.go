package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/app/services"
	"github.com/oakfield/realty/internal/middleware"
)

// MessageController handles messaging endpoints
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// SendMessage handles sending a message
// @Summary Send message
// @Description Sends a message from the authenticated user to another user
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.messageService.SendMessage(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// Conversations handles retrieving per-counterpart summaries
// @Summary List conversations
// @Description Retrieves the authenticated user's conversations with last message and unread count, most recently active first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Conversation} "Conversations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/conversations [get]
func (c *MessageController) Conversations(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	conversations, err := c.messageService.Conversations(ctx, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations))
}

// History handles retrieving a bidirectional message history
// @Summary Get message history
// @Description Retrieves the full message history with a counterpart, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param counterpartId path int true "Counterpart user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid counterpart ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Counterpart not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{counterpartId} [get]
func (c *MessageController) History(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	counterpartID, err := strconv.ParseInt(ctx.Param("counterpartId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid counterpart ID").
			WithDetails("Counterpart ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	messages, err := c.messageService.History(ctx, actorID, counterpartID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// MarkConversationRead handles flagging inbound messages as read
// @Summary Mark conversation read
// @Description Marks all unread messages from the counterpart to the authenticated user as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param counterpartId path int true "Counterpart user ID"
// @Success 200 {object} dto.APIResponse{data=dto.MarkReadResponse} "Conversation marked read"
// @Failure 400 {object} dto.ErrorResponse "Invalid counterpart ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{counterpartId}/read [put]
func (c *MessageController) MarkConversationRead(ctx *gin.Context) {
	actorID, _ := middleware.ActorID(ctx)

	counterpartID, err := strconv.ParseInt(ctx.Param("counterpartId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid counterpart ID").
			WithDetails("Counterpart ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.messageService.MarkConversationRead(ctx, actorID, counterpartID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MarkReadResponse{Updated: updated}))
}
