package household

import (
	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, importService *ImportService, store *Store, logService *logs.LogService, bucket string) {
	controller := &Controller{
		ImportService: importService,
		Store:         store,
		LogService:    logService,
		Bucket:        bucket,
	}

	group := r.Group("/api/household")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("/import", controller.UploadDataset)
		group.GET("/import/:jobId", controller.ImportStatus)
		group.GET("/count", controller.Count)
		group.GET("/dataset", controller.Dataset)
		group.GET("/member/:entryId", controller.MemberRaw)
		group.GET("/archives", controller.ListArchives)
	}
}
