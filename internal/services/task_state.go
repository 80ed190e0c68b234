package services

import (
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// taskState is the status/progress pair kept in sync by the transition rules
// below. Status and progress are never persisted independently; every write
// path goes through nextTaskState.
type taskState struct {
	Status   models.TaskStatus
	Progress int
}

// taskStateChange is a requested mutation. A nil field means the caller is
// not touching it.
type taskStateChange struct {
	Status   *models.TaskStatus
	Progress *int
}

// nextTaskState applies a requested change to the current state and returns
// the synchronized result. When both fields are set, the status rule runs
// first and the progress rule second, so an explicit progress wins except
// when the new status is ON_HOLD.
//
// Status-driven coupling:
//   - COMPLETED forces progress to 100
//   - IN_PROGRESS bumps progress to 25, but only from exactly 0
//   - PENDING resets progress to 0, but only from exactly 100
//   - ON_HOLD leaves progress alone
//
// Progress-driven coupling (skipped while the task sits ON_HOLD):
//   - 100 or more forces COMPLETED
//   - anything in between forces IN_PROGRESS
//   - 0 forces PENDING
func nextTaskState(current taskState, change taskStateChange) taskState {
	next := current

	if change.Status != nil {
		next.Status = *change.Status
		switch next.Status {
		case models.TaskStatusCompleted:
			next.Progress = 100
		case models.TaskStatusInProgress:
			if next.Progress == 0 {
				next.Progress = 25
			}
		case models.TaskStatusPending:
			if next.Progress == 100 {
				next.Progress = 0
			}
		case models.TaskStatusOnHold:
			// progress keeps whatever value it had
		}
	}

	if change.Progress != nil {
		next.Progress = *change.Progress
		if next.Status != models.TaskStatusOnHold {
			switch {
			case next.Progress >= 100:
				next.Status = models.TaskStatusCompleted
			case next.Progress > 0:
				next.Status = models.TaskStatusInProgress
			default:
				next.Status = models.TaskStatusPending
			}
		}
	}

	return next
}
