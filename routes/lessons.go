package routes

import (
	"leximax/controllers"

	"github.com/gin-gonic/gin"
)

// SetupLessonRoutes registers the per-user lesson workflow.
func SetupLessonRoutes(router *gin.RouterGroup) {
	lessons := router.Group("/lessons")
	{
		lessons.GET("", controllers.GetLessons)
		lessons.GET("/:id", controllers.GetLesson)
		lessons.POST("/:id/activities/:activityId/complete", controllers.CompleteActivity)
	}
	router.POST("/maxims/:id/complete", controllers.CompleteMaxim)
}
