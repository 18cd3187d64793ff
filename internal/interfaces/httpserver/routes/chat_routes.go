package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/chat-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chats", handler.Create)
	router.GET("/chats/:id", handler.Get)

	// Membership
	router.PUT("/chats/:id/addSingleUser", handler.AddSingleUser)
	router.PUT("/chats/:id/addUsers", handler.AddUsers)
	router.PUT("/chats/:id/removeUser", handler.RemoveUser)
	router.PUT("/chats/:id/removeUsers", handler.RemoveUsers)

	router.DELETE("/delChats/:id", handler.Delete)
}
