package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/services"
)

func CreateProjectController(router *gin.Engine, projectService *services.ProjectService, authService *services.AuthService) {
	router.POST("/projects", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateProject(c, projectService, authService)
	})
}

func CreateProject(c *gin.Context, projectService *services.ProjectService, authService *services.AuthService) {
	userID := c.MustGet("userId").(string)
	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ctx := c.Request.Context()
	owner, err := authService.UserByID(ctx, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	projectID, err := projectService.Create(ctx, request.Name, owner)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "project created",
		"projectId": projectID,
	})
}

// GetProjectController serves the invite/join landing view for a shared
// project link.
func GetProjectController(router *gin.Engine, projectService *services.ProjectService) {
	router.GET("/projects/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		userID := c.MustGet("userId").(string)
		project, err := projectService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ProjectLanding{
			ID:            project.ID,
			Name:          project.Name,
			Description:   project.Description,
			IsShared:      project.IsShared,
			MemberCount:   len(project.Members),
			AlreadyMember: project.HasMember(userID),
		})
	})
}

func UpdateProjectController(router *gin.Engine, projectService *services.ProjectService) {
	router.PATCH("/projects/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		var request dto.UpdateProjectRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		if err := projectService.UpdateSettings(c.Request.Context(), c.Param("id"), request.Name, request.Description); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "project updated"})
	})
}
