package dto

type CreateTaskRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateTaskRequest carries a partial task edit; absent fields stay as they
// are.
type UpdateTaskRequest struct {
	Content  *string `json:"content"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	DueDate  *string `json:"dueDate"`
}
