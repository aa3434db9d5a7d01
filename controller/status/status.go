package status

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/services"
)

func StatusController(router *gin.Engine, statusService *services.StatusFeedService, authService *services.AuthService) {
	group := router.Group("/projects/:id/status", middleware.AccessTokenMiddleware())
	group.POST("", func(c *gin.Context) {
		PostUpdate(c, statusService, authService)
	})
	group.GET("", func(c *gin.Context) {
		LatestUpdates(c, statusService)
	})
}

func PostUpdate(c *gin.Context, statusService *services.StatusFeedService, authService *services.AuthService) {
	userID := c.MustGet("userId").(string)
	var request dto.PostUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()
	author, err := authService.UserByID(ctx, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	updateID, err := statusService.PostUpdate(ctx, c.Param("id"), author, services.PostUpdateInput{
		Content:         request.Content,
		Type:            request.Type,
		TasksCompleted:  request.TasksCompleted,
		TasksInProgress: request.TasksInProgress,
		Blockers:        request.Blockers,
		NextSteps:       request.NextSteps,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "status update posted",
		"updateId": updateID,
	})
}

func LatestUpdates(c *gin.Context, statusService *services.StatusFeedService) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	updates, err := statusService.Latest(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}
