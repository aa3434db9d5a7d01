package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/services"
)

func TaskController(router *gin.Engine, taskService *services.TaskService, authService *services.AuthService) {
	group := router.Group("/projects/:id/tasks", middleware.AccessTokenMiddleware())
	group.POST("", func(c *gin.Context) {
		CreateTask(c, taskService, authService)
	})
	group.PATCH("/:taskId", func(c *gin.Context) {
		UpdateTask(c, taskService)
	})
	group.DELETE("/:taskId", func(c *gin.Context) {
		DeleteTask(c, taskService)
	})
}

func CreateTask(c *gin.Context, taskService *services.TaskService, authService *services.AuthService) {
	userID := c.MustGet("userId").(string)
	var request dto.CreateTaskRequest
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

	taskID, err := taskService.CreateTask(ctx, c.Param("id"), request.Content, author)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "task created",
		"taskId":  taskID,
	})
}

func UpdateTask(c *gin.Context, taskService *services.TaskService) {
	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	patch := services.TaskPatch{
		Content:  request.Content,
		Status:   request.Status,
		Priority: request.Priority,
		DueDate:  request.DueDate,
	}
	if err := taskService.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("taskId"), patch); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task updated"})
}

func DeleteTask(c *gin.Context, taskService *services.TaskService) {
	if err := taskService.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("taskId")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
