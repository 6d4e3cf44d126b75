package view

import (
	"strings"
	"time"

	"github.com/fastygo/planner/domain"
)

// All disables a criterion.
const All = "all"

// Criteria selects tasks. Empty fields and fields set to All match everything.
type Criteria struct {
	Search   string `json:"search,omitempty"`
	Priority string `json:"priority,omitempty"`
	Course   string `json:"course,omitempty"`
	Status   string `json:"status,omitempty"`
}

// IsZero reports whether the criteria match every task.
func (c Criteria) IsZero() bool {
	return c.Search == "" && inactive(c.Priority) && inactive(c.Course) && inactive(c.Status)
}

// Filter returns the tasks matching every active criterion, in input order.
// Status is derived at now.
func Filter(tasks []domain.Task, c Criteria, now time.Time) []domain.Task {
	search := strings.ToLower(c.Search)
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(task.Title), search) &&
			!strings.Contains(strings.ToLower(task.Description), search) {
			continue
		}
		if !inactive(c.Priority) && string(task.Priority) != c.Priority {
			continue
		}
		if !inactive(c.Course) && task.CourseID != c.Course {
			continue
		}
		if !inactive(c.Status) && string(task.Status(now)) != c.Status {
			continue
		}
		out = append(out, task)
	}
	return out
}

func inactive(value string) bool {
	return value == "" || value == All
}
