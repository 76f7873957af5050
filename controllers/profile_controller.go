package controllers

import (
	"net/http"

	"leximax/services"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the caller with level title and xp progress.
func GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := services.GetProgressionService().Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to load profile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
