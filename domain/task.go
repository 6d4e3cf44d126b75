package domain

import (
	"strings"
	"time"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the recognized priorities in ascending urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid reports whether p is one of the recognized priorities.
func (p Priority) IsValid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePriority normalizes user input into a Priority.
func ParsePriority(value string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	return p, p.IsValid()
}

// Task represents a single piece of coursework.
type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     Date      `json:"dueDate,omitzero" yaml:"dueDate,omitempty"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	CourseID    string    `json:"courseId,omitempty" yaml:"courseId,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// Status derives the task state at reference.
func (t Task) Status(reference time.Time) Status {
	return DeriveStatus(t.Completed, t.DueDate, reference)
}

// IsOverdue reports whether the task is unfinished and past due at reference.
func (t Task) IsOverdue(reference time.Time) bool {
	return t.Status(reference) == StatusOverdue
}

// TaskPatch describes a partial task update. Nil fields are left untouched;
// non-nil fields are applied even when they hold a zero value.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	CourseID    *string   `json:"courseId,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.CourseID == nil && p.Completed == nil
}

// Apply returns a copy of t with the patch fields replaced.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.CourseID != nil {
		t.CourseID = *p.CourseID
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
