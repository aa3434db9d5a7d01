package subscription

import "taskflow/model"

// ProjectView is one project merged with its live task list and status
// feed. TasksErr/UpdatesErr carry the failure of the corresponding stream
// without hiding the rest of the project.
type ProjectView struct {
	model.Project
	Tasks      []model.Task         `json:"tasks"`
	Updates    []model.StatusUpdate `json:"updates"`
	Stats      model.TaskStats      `json:"stats"`
	TasksErr   string               `json:"tasksError,omitempty"`
	UpdatesErr string               `json:"updatesError,omitempty"`
}

// Aggregate is the client-side view-model: every visible project joined
// with its sub-collections, in the order the project query delivered them.
// Err reports a failed project stream.
type Aggregate struct {
	Projects []ProjectView `json:"projects"`
	Err      string        `json:"error,omitempty"`
}

// Project returns the view for one project id.
func (a Aggregate) Project(id string) (ProjectView, bool) {
	for _, p := range a.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return ProjectView{}, false
}
