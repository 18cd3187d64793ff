package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/user"
	"jan-server/services/chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/chat-api/internal/interfaces/httpserver/responses"
)

const msgUserNotFound = "User not found"

// UserHandler exposes HTTP entrypoints for users.
type UserHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(service user.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("handler", "user").Logger(),
	}
}

// Create handles POST /users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body requests.CreateUserRequest true "User"
// @Success 201 {object} model.User
// @Failure 400 {object} responses.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req requests.CreateUserRequest
	if !bindJSON(c, h.log, &req, "user-create-invalid-body") {
		return
	}

	u, err := h.service.Create(c.Request.Context(), user.CreateParams{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date.Ptr(),
	})
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Get handles GET /users/:id
// @Summary Get a user with chats, messages and replies
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgUserNotFound, "user-get-invalid-id")
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// List handles GET /users
// @Summary List users with their chats and messages
// @Tags Users
// @Produce json
// @Success 200 {array} model.User
// @Failure 400 {object} responses.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Update handles PUT /users/:id
// @Summary Update user fields
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body requests.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgUserNotFound, "user-update-invalid-id")
	if !ok {
		return
	}

	var req requests.UpdateUserRequest
	if !bindJSON(c, h.log, &req, "user-update-invalid-body") {
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, user.Patch{
		Name:  req.Name,
		Email: req.Email,
		Date:  req.Date.Ptr(),
	})
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /users/:id
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, h.log, "id", msgUserNotFound, "user-delete-invalid-id")
	if !ok {
		return
	}

	u, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
