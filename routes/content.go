package routes

import (
	"leximax/controllers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes registers the public, read-only catalogue.
func SetupContentRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/modules", controllers.GetModules)
		api.GET("/maxims", controllers.GetMaxims)
		api.GET("/maxims/:id", controllers.GetMaxim)
		api.GET("/levels", controllers.GetLevels)
		api.GET("/badges", controllers.GetBadges)
	}
}
