package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/chat-api/internal/interfaces/httpserver/handlers"
)

// Provider coordinates all route registrations.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider constructs the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches the resource routes at the root of the engine.
func (p *Provider) Register(engine *gin.Engine) {
	registerUserRoutes(engine, p.handlers.User)
	registerChatRoutes(engine, p.handlers.Chat)
	registerMessageRoutes(engine, p.handlers.Message)
}
