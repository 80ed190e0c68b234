package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

func statusPtr(s models.TaskStatus) *models.TaskStatus { return &s }
func intPtr(i int) *int                                { return &i }

func TestNextTaskState_StatusDriven(t *testing.T) {
	tests := []struct {
		name    string
		current taskState
		status  models.TaskStatus
		want    taskState
	}{
		{
			name:    "completed forces progress to 100",
			current: taskState{models.TaskStatusInProgress, 40},
			status:  models.TaskStatusCompleted,
			want:    taskState{models.TaskStatusCompleted, 100},
		},
		{
			name:    "in progress bumps zero progress to 25",
			current: taskState{models.TaskStatusPending, 0},
			status:  models.TaskStatusInProgress,
			want:    taskState{models.TaskStatusInProgress, 25},
		},
		{
			name:    "in progress keeps nonzero progress",
			current: taskState{models.TaskStatusPending, 60},
			status:  models.TaskStatusInProgress,
			want:    taskState{models.TaskStatusInProgress, 60},
		},
		{
			name:    "pending resets progress from exactly 100",
			current: taskState{models.TaskStatusCompleted, 100},
			status:  models.TaskStatusPending,
			want:    taskState{models.TaskStatusPending, 0},
		},
		{
			name:    "pending keeps partial progress",
			current: taskState{models.TaskStatusInProgress, 70},
			status:  models.TaskStatusPending,
			want:    taskState{models.TaskStatusPending, 70},
		},
		{
			name:    "on hold keeps progress",
			current: taskState{models.TaskStatusInProgress, 55},
			status:  models.TaskStatusOnHold,
			want:    taskState{models.TaskStatusOnHold, 55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextTaskState(tt.current, taskStateChange{Status: &tt.status})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextTaskState_ProgressDriven(t *testing.T) {
	tests := []struct {
		name     string
		current  taskState
		progress int
		want     taskState
	}{
		{
			name:     "100 forces completed",
			current:  taskState{models.TaskStatusInProgress, 40},
			progress: 100,
			want:     taskState{models.TaskStatusCompleted, 100},
		},
		{
			name:     "partial progress forces in progress",
			current:  taskState{models.TaskStatusPending, 0},
			progress: 1,
			want:     taskState{models.TaskStatusInProgress, 1},
		},
		{
			name:     "zero forces pending",
			current:  taskState{models.TaskStatusInProgress, 40},
			progress: 0,
			want:     taskState{models.TaskStatusPending, 0},
		},
		{
			name:     "on hold pins status while progress moves",
			current:  taskState{models.TaskStatusOnHold, 10},
			progress: 50,
			want:     taskState{models.TaskStatusOnHold, 50},
		},
		{
			name:     "on hold pins status even at 100",
			current:  taskState{models.TaskStatusOnHold, 10},
			progress: 100,
			want:     taskState{models.TaskStatusOnHold, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextTaskState(tt.current, taskStateChange{Progress: &tt.progress})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextTaskState_Combined(t *testing.T) {
	tests := []struct {
		name    string
		current taskState
		change  taskStateChange
		want    taskState
	}{
		{
			name:    "explicit progress wins over status default",
			current: taskState{models.TaskStatusPending, 0},
			change:  taskStateChange{Status: statusPtr(models.TaskStatusCompleted), Progress: intPtr(80)},
			want:    taskState{models.TaskStatusInProgress, 80},
		},
		{
			name:    "on hold with progress keeps the hold",
			current: taskState{models.TaskStatusInProgress, 30},
			change:  taskStateChange{Status: statusPtr(models.TaskStatusOnHold), Progress: intPtr(50)},
			want:    taskState{models.TaskStatusOnHold, 50},
		},
		{
			name:    "empty change is a no-op",
			current: taskState{models.TaskStatusInProgress, 30},
			change:  taskStateChange{},
			want:    taskState{models.TaskStatusInProgress, 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextTaskState(tt.current, tt.change)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Walks a task through a full lifecycle and checks the pair stays consistent
// at every step.
func TestNextTaskState_Lifecycle(t *testing.T) {
	state := taskState{models.TaskStatusPending, 0}

	state = nextTaskState(state, taskStateChange{Progress: intPtr(100)})
	assert.Equal(t, taskState{models.TaskStatusCompleted, 100}, state)

	state = nextTaskState(state, taskStateChange{Status: statusPtr(models.TaskStatusPending)})
	assert.Equal(t, taskState{models.TaskStatusPending, 0}, state)

	state = nextTaskState(state, taskStateChange{Status: statusPtr(models.TaskStatusOnHold)})
	state = nextTaskState(state, taskStateChange{Progress: intPtr(50)})
	assert.Equal(t, taskState{models.TaskStatusOnHold, 50}, state)

	state = nextTaskState(state, taskStateChange{Status: statusPtr(models.TaskStatusInProgress)})
	assert.Equal(t, taskState{models.TaskStatusInProgress, 50}, state)
}
