package model

import "time"

// Task status values. Stored verbatim, including the space in "To Do".
const (
	StatusToDo  = "To Do"
	StatusDoing = "Doing"
	StatusDone  = "Done"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task lives in the projects/{id}/tasks sub-collection.
type Task struct {
	ID        string    `firestore:"-" json:"id"`
	Content   string    `firestore:"content" json:"content"`
	Status    string    `firestore:"status" json:"status"`
	Comments  []Comment `firestore:"comments" json:"comments"`
	CreatedBy string    `firestore:"createdBy" json:"createdBy"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	Priority  string    `firestore:"priority,omitempty" json:"priority,omitempty"`
	DueDate   string    `firestore:"dueDate,omitempty" json:"dueDate,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Comment struct {
	ID        string    `firestore:"id" json:"id"`
	Text      string    `firestore:"text" json:"text"`
	Author    User      `firestore:"author" json:"author"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

func ValidStatus(s string) bool {
	return s == StatusToDo || s == StatusDoing || s == StatusDone
}

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// TaskStats are the per-project counters shown on the dashboard cards.
type TaskStats struct {
	Total int `json:"total"`
	ToDo  int `json:"todo"`
	Doing int `json:"doing"`
	Done  int `json:"done"`
}

func CountTasks(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusToDo:
			stats.ToDo++
		case StatusDoing:
			stats.Doing++
		case StatusDone:
			stats.Done++
		}
	}
	return stats
}
