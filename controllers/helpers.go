package controllers

import (
	"errors"
	"net/http"

	"leximax/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func currentUserID(ctx *gin.Context) (string, bool) {
	userID := ctx.GetString("userID")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID, true
}

// respondError maps domain errors to HTTP statuses.
func respondError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrModuleNotFound),
		errors.Is(err, models.ErrMaximNotFound),
		errors.Is(err, models.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrEmailInUse),
		errors.Is(err, models.ErrSessionFinished):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrEmptyPrompt),
		errors.Is(err, models.ErrEmptyAnswer):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrGeneratorDisabled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", ctx.FullPath()).Error(message)
		ctx.JSON(status, gin.H{"error": message})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// respondUser writes the updated user, or 404 when the caller's account no
// longer exists.
func respondUser(ctx *gin.Context, user *models.User, err error, message string) {
	if err != nil {
		respondError(ctx, err, message)
		return
	}
	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrUserNotFound.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user, "xpProgress": models.XpForNextLevel(user.XP)})
}
