package routes

import (
	"leximax/controllers"

	"github.com/gin-gonic/gin"
)

func IncrementStreakRouteHandler(c *gin.Context) {
	controllers.IncrementStreak(c)
}

func ResetStreakRouteHandler(c *gin.Context) {
	controllers.ResetStreak(c)
}
