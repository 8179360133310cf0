package master

import (
	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, masterService MasterServicePort, logService LogServicePort) {
	ctl := &Controller{MasterService: masterService, LogService: logService}

	group := r.Group("/api/master")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("/upload", ctl.UploadMaster)
		group.GET("", ctl.GetAll)
		group.GET("/template", ctl.Template)
	}
}
