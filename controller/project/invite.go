package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/controller/httperr"
	"taskflow/dto"
	"taskflow/middleware"
	"taskflow/services"
)

func InviteController(router *gin.Engine, membershipService *services.MembershipService) {
	router.POST("/projects/:id/invite", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Invite(c, membershipService)
	})
}

func Invite(c *gin.Context, membershipService *services.MembershipService) {
	var request dto.InviteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	member, err := membershipService.InviteMember(c.Request.Context(), c.Param("id"), request.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": member.Name + " has been added to the project",
		"member":  member,
	})
}

// JoinController handles the shared-link join. Already being a member is a
// success here, not a conflict, so the link page can always navigate on.
func JoinController(router *gin.Engine, membershipService *services.MembershipService, authService *services.AuthService) {
	router.POST("/projects/:id/join", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Join(c, membershipService, authService)
	})
}

func Join(c *gin.Context, membershipService *services.MembershipService, authService *services.AuthService) {
	userID := c.MustGet("userId").(string)
	ctx := c.Request.Context()

	identity, err := authService.UserByID(ctx, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	alreadyMember, err := membershipService.JoinViaLink(ctx, c.Param("id"), identity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	message := "joined the project"
	if alreadyMember {
		message = "you're already a member of this project"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       message,
		"alreadyMember": alreadyMember,
	})
}
