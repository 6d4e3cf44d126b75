package repository

import (
	"context"

	"github.com/fastygo/planner/domain"
)

// TaskRepository persists the task collection. Its methods never return
// errors: storage failures are logged and reported through the result.
type TaskRepository interface {
	GetAll(ctx context.Context) []domain.Task
	SaveAll(ctx context.Context, tasks []domain.Task) bool
	Add(ctx context.Context, task domain.Task) domain.Task
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, bool)
	// Remove reports whether id was present. A failed write is logged, not reported.
	Remove(ctx context.Context, id string) bool
	ToggleCompletion(ctx context.Context, id string) (*domain.Task, bool)
	Clear(ctx context.Context) bool
}
