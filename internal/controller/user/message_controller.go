package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/internal/controller"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/service"
)

type MessageController struct {
	messageService service.MessageService
}

func NewMessageController(ms service.MessageService) *MessageController {
	return &MessageController{messageService: ms}
}

// GetMessages godoc
// @Summary List the caller's messages
// @Description Newest first. Includes result notices and session expiry notices.
// @Tags User - Messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MessageDTO
// @Router /messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)
	msgs, err := c.messageService.GetMessages(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load messages")
		return
	}
	ctx.JSON(http.StatusOK, msgs)
}
