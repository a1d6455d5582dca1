package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/services"
	"github.com/acadio/backend/internal/middleware"
)

// MessageController handles the admin side of support messaging
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// ListMessages handles GET /users/admin/messages
func (c *MessageController) ListMessages(ctx *gin.Context) {
	var filter dto.MessageFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	messages, err := c.messageService.ListMessages(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// ResolveMessage handles PUT /users/admin/messages/:id/resolve
func (c *MessageController) ResolveMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "message")
	if !ok {
		return
	}
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.ResolveMessage(ctx, id, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResolveMessageResponse{
		Message: "Message resolved",
		Data:    message,
	})
}
