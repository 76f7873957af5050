package routes

import (
	"leximax/controllers"
	"leximax/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupQuestRoutes registers LexiQuest. Every endpoint that reaches the text
// generator goes through the limiter.
func SetupQuestRoutes(router *gin.RouterGroup, limiter *middlewares.RateLimiter) {
	quest := router.Group("/quest")
	limited := middlewares.RateLimit(limiter, "quest")
	{
		quest.POST("/start", limited, controllers.StartQuest)
		quest.POST("/:id/answer", limited, controllers.AnswerQuest)
		quest.DELETE("/:id", controllers.QuitQuest)
		quest.POST("/ask", limited, controllers.AskQuest)
	}
}
