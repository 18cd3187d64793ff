package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/chat-api/internal/interfaces/httpserver/responses"
)

const (
	msgOriginalNotFound      = "Original message not found"
	msgScopedMessageNotFound = "Message not found or does not belong to the specified chat and user"
	msgChatMessagesDeleted   = "All messages in the chat have been deleted successfully"
)

// MessageHandler exposes HTTP entrypoints for messages and replies.
type MessageHandler struct {
	service message.Service
	log     zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service message.Service, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("handler", "message").Logger(),
	}
}

// Create handles POST /chats/:id/users/:userId/messages
// @Summary Post a message to a chat
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param userId path int true "Author ID"
// @Param request body requests.CreateMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/users/{userId}/messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	chatID, ok := pathID(c, h.log, "id", msgChatNotFound, "message-create-invalid-chat-id")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.log, "userId", msgUserNotFound, "message-create-invalid-user-id")
	if !ok {
		return
	}

	var req requests.CreateMessageRequest
	if !bindJSON(c, h.log, &req, "message-create-invalid-body") {
		return
	}

	created, err := h.service.Create(c.Request.Context(), chatID, userID, req.Content)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Reply handles POST /messages/:id/reply
// @Summary Reply to a message
// @Description The reply is posted to the chat of the original message.
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path int true "Original message ID"
// @Param request body requests.ReplyRequest true "Reply"
// @Success 201 {object} model.Message
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c *gin.Context) {
	parentID, ok := pathID(c, h.log, "id", msgOriginalNotFound, "message-reply-invalid-id")
	if !ok {
		return
	}

	var req requests.ReplyRequest
	if !bindJSON(c, h.log, &req, "message-reply-invalid-body") {
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), parentID, req.UserID, req.Content)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// ListByUser handles GET /users/:id/messages
// @Summary List the messages a user authored
// @Tags Messages
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Message
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id}/messages [get]
func (h *MessageHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, h.log, "id", msgUserNotFound, "message-list-user-invalid-id")
	if !ok {
		return
	}

	messages, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// List handles GET /messages
// @Summary List all messages with author and chat
// @Tags Messages
// @Produce json
// @Success 200 {array} model.Message
// @Failure 400 {object} responses.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// DeleteInChat handles DELETE /chats/:id/users/:userId/messages
// @Summary Delete one message posted by a user in a chat
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param userId path int true "Author ID"
// @Param request body requests.DeleteMessageRequest true "Message"
// @Success 200 {object} model.Message
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/users/{userId}/messages [delete]
func (h *MessageHandler) DeleteInChat(c *gin.Context) {
	chatID, ok := pathID(c, h.log, "id", msgScopedMessageNotFound, "message-delete-invalid-chat-id")
	if !ok {
		return
	}
	userID, ok := pathID(c, h.log, "userId", msgScopedMessageNotFound, "message-delete-invalid-user-id")
	if !ok {
		return
	}

	var req requests.DeleteMessageRequest
	if !bindJSON(c, h.log, &req, "message-delete-invalid-body") {
		return
	}

	deleted, err := h.service.DeleteInChat(c.Request.Context(), chatID, userID, req.MessageID)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// DeleteByUser handles DELETE /users/:id/messages
// @Summary Delete every message a user authored
// @Tags Messages
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} responses.DeleteCountResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id}/messages [delete]
func (h *MessageHandler) DeleteByUser(c *gin.Context) {
	userID, ok := pathID(c, h.log, "id", msgUserNotFound, "message-delete-user-invalid-id")
	if !ok {
		return
	}

	count, err := h.service.DeleteByUser(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.DeleteCountResponse{Count: count})
}

// DeleteByChat handles DELETE /chats/:id/messages
// @Summary Delete every message in a chat
// @Tags Messages
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {object} responses.ChatMessagesDeletedResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/messages [delete]
func (h *MessageHandler) DeleteByChat(c *gin.Context) {
	chatID, ok := pathID(c, h.log, "id", msgChatNotFound, "message-delete-chat-invalid-id")
	if !ok {
		return
	}

	count, err := h.service.DeleteByChat(c.Request.Context(), chatID)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.ChatMessagesDeletedResponse{
		Message: msgChatMessagesDeleted,
		Count:   count,
	})
}
