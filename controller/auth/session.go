package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/services"
)

func SignOutController(router *gin.Engine, authService *services.AuthService) {
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		userID := c.MustGet("userId").(string)
		if err := authService.SignOut(c.Request.Context(), userID); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	})
}

func MeController(router *gin.Engine, authService *services.AuthService) {
	router.GET("/auth/me", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		userID := c.MustGet("userId").(string)
		user, err := authService.UserByID(c.Request.Context(), userID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	})
}

func ProfileController(router *gin.Engine, authService *services.AuthService) {
	router.PUT("/user/profile", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		userID := c.MustGet("userId").(string)
		var request dto.UpdateProfileRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if err := authService.UpdateDisplayName(c.Request.Context(), userID, request.Name); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
	})
}
