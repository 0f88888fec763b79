// Package messages is the public guestbook.
package messages

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"casamento/app/models/message"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/response"
)

const defaultPageSize = 20

// MessageController serves the guestbook wall.
type MessageController struct {
	messages *repositories.MessageRepository
}

// NewMessageController builds the controller.
func NewMessageController() *MessageController {
	return &MessageController{
		messages: repositories.NewMessageRepository(),
	}
}

// Index lists messages newest first, paginated.
func (mc *MessageController) Index(c *gin.Context) {
	page := cast.ToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize := cast.ToInt(c.DefaultQuery("per_page", "0"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	items, total, err := mc.messages.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.ServerError(c, err, "Não foi possível carregar as mensagens")
		return
	}

	response.Data(c, gin.H{
		"messages": items,
		"pager": gin.H{
			"page":     page,
			"per_page": pageSize,
			"total":    total,
		},
	})
}

// Store posts one message to the wall.
func (mc *MessageController) Store(c *gin.Context) {
	req, err := requests.ValidateMessageCreate(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	m := message.Message{
		Name:    req.Name,
		Content: req.Content,
		Email:   req.Email,
	}

	if err := mc.messages.Create(c.Request.Context(), &m); err != nil {
		response.ServerError(c, err, "Não foi possível publicar a mensagem")
		return
	}

	response.Created(c, m)
}
