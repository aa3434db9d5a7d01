// Package subscription keeps an in-memory aggregate of every project the
// identity can see, fed by live queries against the document store. Command
// services never touch the aggregate; their writes flow back through the
// same live queries as everyone else's.
package subscription

import (
	"context"

	"taskflow/model"
)

// ProjectsEvent is one snapshot of the projects-by-membership query. A
// non-nil Err means the stream failed; the channel closes after delivering
// it and the failure stays scoped to this stream.
type ProjectsEvent struct {
	Projects []model.Project
	Err      error
}

// TasksEvent is one snapshot of a single project's task sub-collection.
type TasksEvent struct {
	Tasks []model.Task
	Err   error
}

// UpdatesEvent is one snapshot of a project's status update feed, newest
// first.
type UpdatesEvent struct {
	Updates []model.StatusUpdate
	Err     error
}

// Watcher opens live queries. Each call returns a channel that delivers a
// snapshot per backend-observed change until the context is cancelled or a
// terminal stream error occurs, after which the channel closes. Cancelling
// the context is the only way to stop a healthy stream.
//
// Delivery order is per-stream only; there is no ordering relation between
// snapshots of different streams.
type Watcher interface {
	WatchProjects(ctx context.Context, uid string) <-chan ProjectsEvent
	WatchTasks(ctx context.Context, projectID string) <-chan TasksEvent
	WatchStatusUpdates(ctx context.Context, projectID string, limit int) <-chan UpdatesEvent
}
