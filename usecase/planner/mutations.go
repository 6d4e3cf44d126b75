package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/view"
)

var (
	requiredTaskFields   = []string{"title", "dueDate", "priority"}
	requiredCourseFields = []string{"name", "code"}
)

func taskID(t domain.Task) string { return t.ID }
func courseID(c domain.Course) string { return c.ID }

// Repositories swallow write failures, so every mutation below re-reads the
// collection and reports ErrStoreUnavailable when the change did not land.

func findByID[T any](records []T, id string, idOf func(T) string) (T, bool) {
	for _, r := range records {
		if idOf(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// sameRecord compares records by their persisted encoding.
func sameRecord[T any](a, b T) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

// AddTask validates and stores a new task.
func (uc *UseCase) AddTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if res := view.Validate(view.TaskFields(task), requiredTaskFields...); !res.Valid {
		return domain.Task{}, domain.NewValidationError(res.Errors)
	}
	if !task.Priority.IsValid() {
		return domain.Task{}, domain.NewValidationError([]string{"priority must be one of low, medium, high"})
	}
	stored := uc.tasks.Add(ctx, task)
	if _, ok := findByID(uc.tasks.GetAll(ctx), stored.ID, taskID); !ok {
		return stored, domain.ErrStoreUnavailable
	}
	return stored, nil
}

// UpdateTask validates and applies patch to the task with id.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	var problems []string
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		problems = append(problems, "title is required")
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		problems = append(problems, "priority must be one of low, medium, high")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems)
	}

	updated, ok := uc.tasks.Update(ctx, id, patch)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return uc.confirmTask(ctx, updated)
}

// ToggleTask flips the completion flag of the task with id.
func (uc *UseCase) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	updated, ok := uc.tasks.ToggleCompletion(ctx, id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return uc.confirmTask(ctx, updated)
}

func (uc *UseCase) confirmTask(ctx context.Context, updated *domain.Task) (*domain.Task, error) {
	current, ok := findByID(uc.tasks.GetAll(ctx), updated.ID, taskID)
	if !ok || !sameRecord(current, *updated) {
		return updated, domain.ErrStoreUnavailable
	}
	return updated, nil
}

// RemoveTask deletes the task with id.
func (uc *UseCase) RemoveTask(ctx context.Context, id string) error {
	if !uc.tasks.Remove(ctx, id) {
		return domain.ErrTaskNotFound
	}
	if _, ok := findByID(uc.tasks.GetAll(ctx), id, taskID); ok {
		return domain.ErrStoreUnavailable
	}
	return nil
}

// AddCourse validates and stores a new course.
func (uc *UseCase) AddCourse(ctx context.Context, course domain.Course) (domain.Course, error) {
	course.Name = strings.TrimSpace(course.Name)
	course.Code = strings.ToUpper(strings.TrimSpace(course.Code))
	if res := view.Validate(view.CourseFields(course), requiredCourseFields...); !res.Valid {
		return domain.Course{}, domain.NewValidationError(res.Errors)
	}
	stored := uc.courses.Add(ctx, course)
	if _, ok := findByID(uc.courses.GetAll(ctx), stored.ID, courseID); !ok {
		return stored, domain.ErrStoreUnavailable
	}
	return stored, nil
}

// UpdateCourse validates and applies patch to the course with id.
func (uc *UseCase) UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	var problems []string
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		problems = append(problems, "name is required")
	}
	if patch.Code != nil && strings.TrimSpace(*patch.Code) == "" {
		problems = append(problems, "code is required")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems)
	}

	updated, ok := uc.courses.Update(ctx, id, patch)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	current, ok := findByID(uc.courses.GetAll(ctx), id, courseID)
	if !ok || !sameRecord(current, *updated) {
		return updated, domain.ErrStoreUnavailable
	}
	return updated, nil
}

// RemoveCourse deletes the course with id. Tasks referencing it keep their
// course identifier.
func (uc *UseCase) RemoveCourse(ctx context.Context, id string) error {
	if !uc.courses.Remove(ctx, id) {
		return domain.ErrCourseNotFound
	}
	if _, ok := findByID(uc.courses.GetAll(ctx), id, courseID); ok {
		return domain.ErrStoreUnavailable
	}
	return nil
}

// SaveSettings replaces the stored preferences.
func (uc *UseCase) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if !uc.settings.Save(ctx, settings) {
		return domain.ErrStoreUnavailable
	}
	return nil
}

// UpdateSettings merges patch into the stored preferences. The merged value
// is returned even when it could not be persisted.
func (uc *UseCase) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	merged, ok := uc.settings.Update(ctx, patch)
	if !ok {
		return merged, domain.ErrStoreUnavailable
	}
	return merged, nil
}
