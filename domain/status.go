package domain

import "time"

// Status is the derived state of a task. It is never persisted.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusPending   Status = "pending"
)

// DeriveStatus classifies a task. Completion dominates; otherwise the task is
// overdue only when due is strictly before now. A zero due date never expires.
func DeriveStatus(completed bool, due Date, now time.Time) Status {
	if completed {
		return StatusCompleted
	}
	if !due.IsZero() && due.Before(now) {
		return StatusOverdue
	}
	return StatusPending
}
