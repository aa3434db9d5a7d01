package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"taskflow/model"
	"taskflow/services"
	"taskflow/subscription"
)

// Live queries. Each Watch method runs a snapshot iterator on its own
// goroutine and forwards one event per backend-observed change. Iterator
// errors are terminal: the event carrying the translated error is the last
// one before the channel closes. Context cancellation closes the channel
// without an error event.

func (s *FirestoreStore) WatchProjects(ctx context.Context, uid string) <-chan subscription.ProjectsEvent {
	ch := make(chan subscription.ProjectsEvent, 1)
	query := s.client.Collection(colProjects).Where("memberIds", "array-contains", uid)
	go func() {
		defer close(ch)
		it := query.Snapshots(ctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if isCanceled(err) || ctx.Err() != nil {
					return
				}
				s.log.Warn("project watch failed", zap.String("uid", uid), zap.Error(err))
				send(ctx, ch, subscription.ProjectsEvent{Err: services.FromBackend(err)})
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				send(ctx, ch, subscription.ProjectsEvent{Err: services.FromBackend(err)})
				return
			}
			projects := make([]model.Project, 0, len(docs))
			for _, doc := range docs {
				p, err := decodeProject(doc)
				if err != nil {
					s.log.Warn("skipping undecodable project", zap.String("doc", doc.Ref.ID), zap.Error(err))
					continue
				}
				projects = append(projects, p)
			}
			if !send(ctx, ch, subscription.ProjectsEvent{Projects: projects}) {
				return
			}
		}
	}()
	return ch
}

func (s *FirestoreStore) WatchTasks(ctx context.Context, projectID string) <-chan subscription.TasksEvent {
	ch := make(chan subscription.TasksEvent, 1)
	query := s.tasksCol(projectID).Query
	go func() {
		defer close(ch)
		it := query.Snapshots(ctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if isCanceled(err) || ctx.Err() != nil {
					return
				}
				s.log.Warn("task watch failed", zap.String("project", projectID), zap.Error(err))
				send(ctx, ch, subscription.TasksEvent{Err: services.FromBackend(err)})
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				send(ctx, ch, subscription.TasksEvent{Err: services.FromBackend(err)})
				return
			}
			tasks := make([]model.Task, 0, len(docs))
			for _, doc := range docs {
				t, err := decodeTask(doc)
				if err != nil {
					s.log.Warn("skipping undecodable task", zap.String("doc", doc.Ref.ID), zap.Error(err))
					continue
				}
				tasks = append(tasks, t)
			}
			if !send(ctx, ch, subscription.TasksEvent{Tasks: tasks}) {
				return
			}
		}
	}()
	return ch
}

func (s *FirestoreStore) WatchStatusUpdates(ctx context.Context, projectID string, limit int) <-chan subscription.UpdatesEvent {
	ch := make(chan subscription.UpdatesEvent, 1)
	query := s.updatesCol(projectID).OrderBy("createdAt", firestore.Desc).Limit(limit)
	go func() {
		defer close(ch)
		it := query.Snapshots(ctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if isCanceled(err) || ctx.Err() != nil {
					return
				}
				s.log.Warn("status update watch failed", zap.String("project", projectID), zap.Error(err))
				send(ctx, ch, subscription.UpdatesEvent{Err: services.FromBackend(err)})
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				send(ctx, ch, subscription.UpdatesEvent{Err: services.FromBackend(err)})
				return
			}
			updates := make([]model.StatusUpdate, 0, len(docs))
			for _, doc := range docs {
				u, err := decodeStatusUpdate(doc)
				if err != nil {
					s.log.Warn("skipping undecodable status update", zap.String("doc", doc.Ref.ID), zap.Error(err))
					continue
				}
				updates = append(updates, u)
			}
			if !send(ctx, ch, subscription.UpdatesEvent{Updates: updates}) {
				return
			}
		}
	}()
	return ch
}

func send[T any](ctx context.Context, ch chan<- T, ev T) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
