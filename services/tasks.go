package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskflow/model"
)

// TaskStore is the slice of the document store task mutations need.
// UpdateTask implementations stamp updatedAt with the backend's server time
// on every call, in the same write as the given fields.
type TaskStore interface {
	CreateTask(ctx context.Context, projectID string, t model.Task) (string, error)
	UpdateTask(ctx context.Context, projectID, taskID string, fields map[string]interface{}) error
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

// TaskPatch carries the fields of a partial task update. Nil means leave
// the field alone.
type TaskPatch struct {
	Content  *string
	Status   *string
	Priority *string
	DueDate  *string
}

// TaskService mutates a project's task sub-collection. Callers never see the
// resulting record; changes come back through the subscription stream.
type TaskService struct {
	store TaskStore
	log   *zap.Logger
}

func NewTaskService(store TaskStore, log *zap.Logger) *TaskService {
	return &TaskService{store: store, log: log}
}

// CreateTask rejects blank content before any network call. New tasks start
// in "To Do" with an empty comment list.
func (s *TaskService) CreateTask(ctx context.Context, projectID, content string, author model.User) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", NewError(KindValidation, "task content is required")
	}
	task := model.Task{
		Content:   content,
		Status:    model.StatusToDo,
		Comments:  []model.Comment{},
		CreatedBy: author.UID,
	}
	id, err := s.store.CreateTask(ctx, projectID, task)
	if err != nil {
		return "", FromBackend(err)
	}
	s.log.Info("task created", zap.String("project", projectID), zap.String("task", id))
	return id, nil
}

// UpdateTask merges the patch into the existing record. Status and priority
// must come from their closed sets; any member may set any value.
func (s *TaskService) UpdateTask(ctx context.Context, projectID, taskID string, patch TaskPatch) error {
	fields := map[string]interface{}{}
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return NewError(KindValidation, "task content is required")
		}
		fields["content"] = *patch.Content
	}
	if patch.Status != nil {
		if !model.ValidStatus(*patch.Status) {
			return NewError(KindValidation, "status must be one of: To Do, Doing, Done")
		}
		fields["status"] = *patch.Status
	}
	if patch.Priority != nil {
		if !model.ValidPriority(*patch.Priority) {
			return NewError(KindValidation, "priority must be one of: Low, Medium, High")
		}
		fields["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		fields["dueDate"] = *patch.DueDate
	}
	if len(fields) == 0 {
		return NewError(KindValidation, "no fields to update")
	}
	if err := s.store.UpdateTask(ctx, projectID, taskID, fields); err != nil {
		return FromBackend(err)
	}
	return nil
}

// DeleteTask removes the task unconditionally. Status updates that
// reference the task keep their dangling id.
func (s *TaskService) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if err := s.store.DeleteTask(ctx, projectID, taskID); err != nil {
		return FromBackend(err)
	}
	s.log.Info("task deleted", zap.String("project", projectID), zap.String("task", taskID))
	return nil
}
