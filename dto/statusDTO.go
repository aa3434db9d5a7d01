package dto

type PostUpdateRequest struct {
	Content         string   `json:"content" binding:"required"`
	Type            string   `json:"type"`
	TasksCompleted  []string `json:"tasksCompleted"`
	TasksInProgress []string `json:"tasksInProgress"`
	Blockers        string   `json:"blockers"`
	NextSteps       string   `json:"nextSteps"`
}
