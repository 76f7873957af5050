package controllers

import (
	"errors"
	"net/http"

	"leximax/models"
	"leximax/services"
	"leximax/structs"

	"github.com/gin-gonic/gin"
)

func StartQuest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	start, err := services.GetQuestService().Start(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to start quiz")
		return
	}
	ctx.JSON(http.StatusOK, start)
}

func AnswerQuest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var request structs.QuestAnswerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	result, err := services.GetQuestService().Answer(ctx.Request.Context(), userID, ctx.Param("id"), request.Answer)
	if err != nil {
		respondError(ctx, err, "Failed to check answer")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func QuitQuest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := services.GetQuestService().Quit(userID, ctx.Param("id")); err != nil {
		respondError(ctx, err, "Failed to end quiz")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz ended. Start a new quiz or ask a question to continue learning!"})
}

// AskQuest forwards a free-form question; generator failures come back as 502.
func AskQuest(ctx *gin.Context) {
	var request structs.QuestAskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	answer, err := services.GetQuestService().Ask(ctx.Request.Context(), request.Prompt)
	if err != nil {
		if errors.Is(err, models.ErrEmptyPrompt) || errors.Is(err, models.ErrGeneratorDisabled) {
			respondError(ctx, err, "Failed to get response")
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get response. Please try again."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"answer": answer})
}
