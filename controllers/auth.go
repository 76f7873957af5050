package controllers

import (
	"net/http"

	"leximax/services"
	"leximax/structs"

	"github.com/gin-gonic/gin"
)

func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session, err := services.GetAuthService().SignUp(ctx.Request.Context(), request.Username, request.Email, request.Password, request.Avatar)
	if err != nil {
		respondError(ctx, err, "Failed to sign up")
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	session, err := services.GetAuthService().Login(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondError(ctx, err, "Failed to sign in")
		return
	}
	ctx.JSON(http.StatusOK, session)
}
