package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTaskRefs_DropsDanglingIDs(t *testing.T) {
	tasks := []Task{
		{ID: "t-1", Content: "Draft spec", Status: StatusDone},
		{ID: "t-2", Content: "Review", Status: StatusDoing},
	}

	resolved := ResolveTaskRefs([]string{"t-2", "t-gone", "t-1"}, tasks)
	assert.Len(t, resolved, 2)
	assert.Equal(t, "t-2", resolved[0].ID)
	assert.Equal(t, "t-1", resolved[1].ID)

	assert.Empty(t, ResolveTaskRefs([]string{"t-gone"}, tasks))
	assert.Empty(t, ResolveTaskRefs(nil, tasks))
}

func TestValidUpdateType(t *testing.T) {
	assert.True(t, ValidUpdateType(UpdateDaily))
	assert.True(t, ValidUpdateType(UpdateWeekly))
	assert.True(t, ValidUpdateType(UpdateMilestone))
	assert.False(t, ValidUpdateType("yearly"))
	assert.False(t, ValidUpdateType(""))
}

func TestCountTasks(t *testing.T) {
	stats := CountTasks([]Task{
		{Status: StatusToDo},
		{Status: StatusDoing},
		{Status: StatusDone},
		{Status: StatusDone},
	})
	assert.Equal(t, TaskStats{Total: 4, ToDo: 1, Doing: 1, Done: 2}, stats)

	assert.Equal(t, TaskStats{}, CountTasks(nil))
}
