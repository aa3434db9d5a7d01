package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/services"
)

func SignUpController(router *gin.Engine, authService *services.AuthService) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, authService)
	})
}

func Signup(c *gin.Context, authService *services.AuthService) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := authService.CreateAccount(c.Request.Context(), request.Email, request.Password, request.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created",
		"user":    user,
	})
}
