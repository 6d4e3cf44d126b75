package view

import (
	"slices"

	"github.com/fastygo/planner/domain"
)

// SortOrder selects ascending or descending due-date order.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortByDueDate returns a copy of tasks ordered by due date. The empty order
// means Ascending; any unrecognized order sorts descending. Tasks with equal
// due dates keep their relative order. A zero due date sorts as the zero
// instant.
func SortByDueDate(tasks []domain.Task, order SortOrder) []domain.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []domain.Task{}
	}
	asc := order == "" || order == Ascending
	slices.SortStableFunc(sorted, func(a, b domain.Task) int {
		if asc {
			return a.DueDate.Compare(b.DueDate.Time)
		}
		return b.DueDate.Compare(a.DueDate.Time)
	})
	return sorted
}
