package model

import "time"

// Status update types.
const (
	UpdateDaily     = "daily"
	UpdateWeekly    = "weekly"
	UpdateMilestone = "milestone"
)

// StatusUpdate lives in the projects/{id}/statusUpdates sub-collection.
// Records are append-only; there is no edit or delete path.
// TasksCompleted and TasksInProgress hold task ids captured at post time and
// are not reconciled when tasks are later deleted, so readers must tolerate
// ids that no longer resolve.
type StatusUpdate struct {
	ID              string    `firestore:"-" json:"id"`
	ProjectID       string    `firestore:"projectId" json:"projectId"`
	Author          User      `firestore:"author" json:"author"`
	Content         string    `firestore:"content" json:"content"`
	Type            string    `firestore:"type" json:"type"`
	CreatedAt       time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	TasksCompleted  []string  `firestore:"tasksCompleted,omitempty" json:"tasksCompleted,omitempty"`
	TasksInProgress []string  `firestore:"tasksInProgress,omitempty" json:"tasksInProgress,omitempty"`
	Blockers        []string  `firestore:"blockers,omitempty" json:"blockers,omitempty"`
	NextSteps       []string  `firestore:"nextSteps,omitempty" json:"nextSteps,omitempty"`
}

func ValidUpdateType(t string) bool {
	return t == UpdateDaily || t == UpdateWeekly || t == UpdateMilestone
}

// ResolveTaskRefs maps the given task ids onto the project's current tasks,
// dropping ids that no longer exist.
func ResolveTaskRefs(ids []string, tasks []Task) []Task {
	byID := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	resolved := make([]Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			resolved = append(resolved, t)
		}
	}
	return resolved
}
