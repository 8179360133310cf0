package chat

import (
	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, chatService *ChatService) {
	chatController := &ChatController{ChatService: chatService}

	userGroup := r.Group("/api/chat")
	userGroup.Use(middlewares.AuthMiddleware())
	{
		userGroup.POST("", chatController.Chat)
	}
}
