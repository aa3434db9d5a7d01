package dto

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ProjectLanding is what the invite/join link page needs before the viewer
// is a member: enough to decide whether to join, nothing more.
type ProjectLanding struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	IsShared      bool   `json:"isShared"`
	MemberCount   int    `json:"memberCount"`
	AlreadyMember bool   `json:"alreadyMember"`
}
