package auth

import (
	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService, logService *logs.LogService) {
	authController := &AuthController{AuthService: authService, LS: logService}

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/signup", authController.SignUp)
		userGroup.POST("/login", authController.Login)
		userGroup.POST("/logout", authController.Logout)
		userGroup.POST("/refresh", authController.Refresh)
		userGroup.GET("/me", authController.Me)
	}

	protected := r.Group("/api/user")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/all", authController.GetUsers)
		protected.POST("/approve", authController.ApproveUser)
		protected.POST("/reject", authController.RejectUser)
		protected.POST("/verify-password", authController.VerifyPassword)
	}
}
