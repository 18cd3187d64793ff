package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/chat-api/internal/interfaces/httpserver/handlers"
)

// Wildcard names must match the user and chat routes at each path position.
func registerMessageRoutes(router gin.IRoutes, handler *handlers.MessageHandler) {
	router.GET("/messages", handler.List)
	router.POST("/messages/:id/reply", handler.Reply)

	// Messages nested under users
	router.GET("/users/:id/messages", handler.ListByUser)
	router.DELETE("/users/:id/messages", handler.DeleteByUser)

	// Messages nested under chats
	router.POST("/chats/:id/users/:userId/messages", handler.Create)
	router.DELETE("/chats/:id/users/:userId/messages", handler.DeleteInChat)
	router.DELETE("/chats/:id/messages", handler.DeleteByChat)
}
