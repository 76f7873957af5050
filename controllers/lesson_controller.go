package controllers

import (
	"errors"
	"io"
	"net/http"

	"leximax/services"
	"leximax/structs"

	"github.com/gin-gonic/gin"
)

func GetLessons(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lessons, err := services.GetLessonService().Lessons(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to load lessons")
		return
	}
	ctx.JSON(http.StatusOK, lessons)
}

func GetLesson(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	lesson, err := services.GetLessonService().Lesson(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Failed to load lesson")
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// CompleteActivity accepts an empty body or a submission to grade.
func CompleteActivity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var request structs.CompleteActivityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	result, err := services.GetLessonService().CompleteActivity(ctx.Request.Context(), userID,
		ctx.Param("id"), ctx.Param("activityId"), request.Submission)
	if err != nil {
		respondError(ctx, err, "Failed to complete activity")
		return
	}
	if result == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func CompleteMaxim(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := services.GetLessonService().CompleteMaxim(ctx.Request.Context(), userID, ctx.Param("id"))
	respondUser(ctx, user, err, "Failed to complete maxim")
}
