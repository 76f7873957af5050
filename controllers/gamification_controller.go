package controllers

import (
	"leximax/services"

	"github.com/gin-gonic/gin"
)

func IncrementStreak(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := services.GetProgressionService().IncrementStreak(ctx.Request.Context(), userID)
	respondUser(ctx, user, err, "Failed to update streak")
}

func ResetStreak(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := services.GetProgressionService().ResetStreak(ctx.Request.Context(), userID)
	respondUser(ctx, user, err, "Failed to reset streak")
}
