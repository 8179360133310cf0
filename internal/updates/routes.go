package updates

import (
	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, updateService UpdateServicePort, logService LogServicePort) {
	ctl := &Controller{UpdateService: updateService, LogService: logService}

	group := r.Group("/api/updates")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("", ctl.Create)
		group.GET("", ctl.List)
		group.GET("/summary", ctl.Summary)
		group.GET("/types", ctl.Types)
		group.GET("/:id", ctl.Get)
		group.PUT("/:id", ctl.Update)
		group.PATCH("/:id/status", ctl.SetStatus)
		group.DELETE("/:id", ctl.Delete)
	}
}
