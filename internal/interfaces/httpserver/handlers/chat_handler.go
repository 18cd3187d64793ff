package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/chat-api/internal/interfaces/httpserver/responses"
)

const msgChatNotFound = "Chat not found"

// ChatHandler exposes HTTP entrypoints for chats and their membership.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Create handles POST /chats
// @Summary Create a chat with an initial set of members
// @Tags Chats
// @Accept json
// @Produce json
// @Param request body requests.CreateChatRequest true "Members"
// @Success 201 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Router /chats [post]
func (h *ChatHandler) Create(c *gin.Context) {
	var req requests.CreateChatRequest
	if !bindJSON(c, h.log, &req, "chat-create-invalid-body") {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.UserIDs)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get handles GET /chats/:id
// @Summary Get a chat with members and messages
// @Tags Chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {object} model.Chat
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id} [get]
func (h *ChatHandler) Get(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-get-invalid-id")
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// AddSingleUser handles PUT /chats/:id/addSingleUser
// @Summary Add one member to a chat
// @Tags Chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param request body requests.ChatMemberRequest true "User"
// @Success 200 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/addSingleUser [put]
func (h *ChatHandler) AddSingleUser(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-add-user-invalid-id")
	if !ok {
		return
	}

	var req requests.ChatMemberRequest
	if !bindJSON(c, h.log, &req, "chat-add-user-invalid-body") {
		return
	}

	h.respondMembers(c)(h.service.AddUser(c.Request.Context(), id, req.UserID))
}

// AddUsers handles PUT /chats/:id/addUsers
// @Summary Add several members to a chat
// @Description Membership becomes the union of the current members and newUsers.
// @Tags Chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param request body requests.AddChatUsersRequest true "Users"
// @Success 200 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/addUsers [put]
func (h *ChatHandler) AddUsers(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-add-users-invalid-id")
	if !ok {
		return
	}

	var req requests.AddChatUsersRequest
	if !bindJSON(c, h.log, &req, "chat-add-users-invalid-body") {
		return
	}

	h.respondMembers(c)(h.service.AddUsers(c.Request.Context(), id, req.NewUsers))
}

// RemoveUser handles PUT /chats/:id/removeUser
// @Summary Remove one member from a chat
// @Tags Chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param request body requests.ChatMemberRequest true "User"
// @Success 200 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/removeUser [put]
func (h *ChatHandler) RemoveUser(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-remove-user-invalid-id")
	if !ok {
		return
	}

	var req requests.ChatMemberRequest
	if !bindJSON(c, h.log, &req, "chat-remove-user-invalid-body") {
		return
	}

	h.respondMembers(c)(h.service.RemoveUser(c.Request.Context(), id, req.UserID))
}

// RemoveUsers handles PUT /chats/:id/removeUsers
// @Summary Remove several members from a chat
// @Tags Chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param request body requests.RemoveChatUsersRequest true "Users"
// @Success 200 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /chats/{id}/removeUsers [put]
func (h *ChatHandler) RemoveUsers(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-remove-users-invalid-id")
	if !ok {
		return
	}

	var req requests.RemoveChatUsersRequest
	if !bindJSON(c, h.log, &req, "chat-remove-users-invalid-body") {
		return
	}

	h.respondMembers(c)(h.service.RemoveUsers(c.Request.Context(), id, req.UserIDs))
}

// Delete handles DELETE /delChats/:id
// @Summary Delete a chat
// @Tags Chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {object} model.Chat
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /delChats/{id} [delete]
func (h *ChatHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgChatNotFound, "chat-delete-invalid-id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

func (h *ChatHandler) respondMembers(c *gin.Context) func(*model.Chat, error) {
	return func(updated *model.Chat, err error) {
		if err != nil {
			responses.HandleError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
