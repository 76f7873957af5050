package controllers

import (
	"net/http"

	"leximax/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard ranks learners by xp and flags the caller.
func GetLeaderboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	board, err := services.BuildLeaderboard(ctx.Request.Context(), services.GetProgressionService().Users(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch leaderboard data")
		return
	}
	ctx.JSON(http.StatusOK, board)
}
