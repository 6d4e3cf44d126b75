package view

import (
	"math"
	"time"

	"github.com/fastygo/planner/domain"
)

// Statistics summarizes a task collection at one instant.
type Statistics struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

// ComputeStatistics counts tasks per derived status. CompletionRate is the
// rounded percentage of completed tasks, 0 for an empty collection.
func ComputeStatistics(tasks []domain.Task, now time.Time) Statistics {
	var s Statistics
	s.Total = len(tasks)
	for _, task := range tasks {
		switch task.Status(now) {
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusOverdue:
			s.Overdue++
		default:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// Upcoming returns up to limit unfinished tasks that are not overdue at now,
// soonest first. A non-positive limit returns all of them.
func Upcoming(tasks []domain.Task, now time.Time, limit int) []domain.Task {
	pending := Filter(tasks, Criteria{Status: string(domain.StatusPending)}, now)
	sorted := SortByDueDate(pending, Ascending)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// CountByCourse returns the number of tasks per course identifier.
func CountByCourse(tasks []domain.Task) map[string]int {
	counts := make(map[string]int)
	for _, task := range tasks {
		counts[task.CourseID]++
	}
	return counts
}
