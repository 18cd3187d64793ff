package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/domain/user"
	"jan-server/services/chat-api/internal/interfaces/httpserver/responses"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	User    *UserHandler
	Chat    *ChatHandler
	Message *MessageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(userService user.Service, chatService chat.Service, messageService message.Service, log zerolog.Logger) *Provider {
	return &Provider{
		User:    NewUserHandler(userService, log),
		Chat:    NewChatHandler(chatService, log),
		Message: NewMessageHandler(messageService, log),
	}
}

// pathID reads a numeric path parameter. An id that cannot name a record is
// rendered as notFound, the same as an id that names nothing.
func pathID(c *gin.Context, log zerolog.Logger, param, notFound, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		responses.HandleNewError(c, log, platformerrors.ErrorTypeNotFound, notFound, code)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into req and renders a 400 when it is malformed
// or misses a required field.
func bindJSON(c *gin.Context, log zerolog.Logger, req any, code string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		responses.HandleNewError(c, log, platformerrors.ErrorTypeValidation, err.Error(), code)
		return false
	}
	return true
}
