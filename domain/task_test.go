package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestTaskPatchApply(t *testing.T) {
	original := Task{
		ID:          "a",
		Title:       "Essay",
		Description: "Draft",
		Priority:    PriorityHigh,
		CourseID:    "c1",
	}

	t.Run("omitted fields are untouched", func(t *testing.T) {
		got := TaskPatch{Title: ptr("Final essay")}.Apply(original)
		assert.Equal(t, "Final essay", got.Title)
		assert.Equal(t, "Draft", got.Description)
		assert.Equal(t, PriorityHigh, got.Priority)
		assert.Equal(t, "Essay", original.Title, "original must not change")
	})

	t.Run("explicit zero values are applied", func(t *testing.T) {
		got := TaskPatch{Description: ptr(""), CourseID: ptr(""), Completed: ptr(false)}.Apply(original)
		assert.Empty(t, got.Description)
		assert.Empty(t, got.CourseID)
		assert.False(t, got.Completed)
	})

	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Completed: ptr(true)}.IsEmpty())
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority(" High ")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	_, ok = ParsePriority("urgent")
	assert.False(t, ok)
}

func TestDefaults(t *testing.T) {
	courses := DefaultCourses()
	if assert.Len(t, courses, 1) {
		assert.Equal(t, DefaultCourseID, courses[0].ID)
		assert.Equal(t, "GEN", courses[0].Code)
	}
	assert.Equal(t, Settings{Theme: "light", Notifications: true, DefaultView: "dashboard"}, DefaultSettings())
}
