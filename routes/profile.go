package routes

import (
	"leximax/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}
