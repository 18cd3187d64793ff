package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/chat-api/internal/interfaces/httpserver/handlers"
)

func registerUserRoutes(router gin.IRoutes, handler *handlers.UserHandler) {
	router.POST("/users", handler.Create)
	router.GET("/users", handler.List)
	router.GET("/users/:id", handler.Get)
	router.PUT("/users/:id", handler.Update)
	router.DELETE("/users/:id", handler.Delete)
}
