package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/services"
)

func SignInController(router *gin.Engine, authService *services.AuthService) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, authService)
	})
}

func Signin(c *gin.Context, authService *services.AuthService) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, tokens, err := authService.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "signed in",
		"user":    user,
		"token":   tokens,
	})
}
