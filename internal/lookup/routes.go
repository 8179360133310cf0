package lookup

import (
	"github.com/gin-gonic/gin"

	"bdm-tracker-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, lookupService LookupServicePort) {
	ctl := &Controller{LookupService: lookupService}

	group := r.Group("/api/lookup")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("/household/:hhid", ctl.GetHousehold)
		group.GET("/search", ctl.SearchMembers)
	}
}
