package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskflow/model"
)

type StatusStore interface {
	CreateStatusUpdate(ctx context.Context, projectID string, u model.StatusUpdate) (string, error)
	LatestStatusUpdates(ctx context.Context, projectID string, limit int) ([]model.StatusUpdate, error)
}

// Feed is the live view of a project's status updates, satisfied by the
// subscription manager. Readers of the feed observe new posts without
// re-querying.
type Feed interface {
	LatestUpdates(projectID string) []model.StatusUpdate
}

// PostUpdateInput is everything a status update captures at post time.
// Blockers and NextSteps arrive as free text and are split into one entry
// per non-empty line.
type PostUpdateInput struct {
	Content         string
	Type            string
	TasksCompleted  []string
	TasksInProgress []string
	Blockers        string
	NextSteps       string
}

// StatusFeedService appends to the per-project status update feed. Records
// are immutable once posted.
type StatusFeedService struct {
	store StatusStore
	log   *zap.Logger
}

func NewStatusFeedService(store StatusStore, log *zap.Logger) *StatusFeedService {
	return &StatusFeedService{store: store, log: log}
}

func (s *StatusFeedService) PostUpdate(ctx context.Context, projectID string, author model.User, in PostUpdateInput) (string, error) {
	if strings.TrimSpace(in.Content) == "" {
		return "", NewError(KindValidation, "update content is required")
	}
	typ := in.Type
	if typ == "" {
		typ = model.UpdateDaily
	}
	if !model.ValidUpdateType(typ) {
		return "", NewError(KindValidation, "type must be one of: daily, weekly, milestone")
	}

	update := model.StatusUpdate{
		ProjectID:       projectID,
		Author:          author,
		Content:         in.Content,
		Type:            typ,
		TasksCompleted:  in.TasksCompleted,
		TasksInProgress: in.TasksInProgress,
		Blockers:        SplitLines(in.Blockers),
		NextSteps:       SplitLines(in.NextSteps),
	}
	id, err := s.store.CreateStatusUpdate(ctx, projectID, update)
	if err != nil {
		return "", FromBackend(err)
	}
	s.log.Info("status update posted",
		zap.String("project", projectID),
		zap.String("type", typ))
	return id, nil
}

// Latest returns the most recent updates, newest first. This is the
// one-shot REST view; live consumers read the same data from the
// subscription manager's aggregate instead.
func (s *StatusFeedService) Latest(ctx context.Context, projectID string, limit int) ([]model.StatusUpdate, error) {
	if limit <= 0 {
		limit = 10
	}
	updates, err := s.store.LatestStatusUpdates(ctx, projectID, limit)
	if err != nil {
		return nil, FromBackend(err)
	}
	return updates, nil
}

// SplitLines breaks free text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			lines = append(lines, strings.TrimSpace(p))
		}
	}
	return lines
}
