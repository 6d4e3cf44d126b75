package kv

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

type taskRepository struct {
	blob blob[[]domain.Task]
	opts options
}

// NewTaskRepository returns a TaskRepository persisting to store.
func NewTaskRepository(store repository.Store, opts ...Option) repository.TaskRepository {
	o := buildOptions(opts)
	return &taskRepository{
		blob: blob[[]domain.Task]{
			store:      store,
			key:        repository.KeyTasks,
			collection: "tasks",
			logger:     o.logger,
			fallback:   func() []domain.Task { return []domain.Task{} },
		},
		opts: o,
	}
}

func (r *taskRepository) GetAll(ctx context.Context) []domain.Task {
	return r.blob.load(ctx)
}

func (r *taskRepository) SaveAll(ctx context.Context, tasks []domain.Task) bool {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return r.blob.save(ctx, tasks)
}

func (r *taskRepository) Add(ctx context.Context, task domain.Task) domain.Task {
	tasks := r.GetAll(ctx)

	task.ID = uniqueID(r.opts.newID, func(id string) bool { return indexOfTask(tasks, id) >= 0 })
	task.Completed = false
	task.CreatedAt = r.opts.now()
	task.UpdatedAt = time.Time{}

	tasks = append(tasks, task)
	if !r.SaveAll(ctx, tasks) {
		r.opts.logger.Warn("task added in memory only", zap.String("task_id", task.ID))
	}
	return task
}

func (r *taskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, bool) {
	tasks := r.GetAll(ctx)
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return nil, false
	}

	updated := patch.Apply(tasks[idx])
	updated.UpdatedAt = r.opts.now()
	tasks[idx] = updated

	if !r.SaveAll(ctx, tasks) {
		r.opts.logger.Warn("task updated in memory only", zap.String("task_id", id))
	}
	return &updated, true
}

func (r *taskRepository) Remove(ctx context.Context, id string) bool {
	tasks := r.GetAll(ctx)
	kept := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(tasks) {
		return false
	}
	if !r.SaveAll(ctx, kept) {
		r.opts.logger.Warn("task removed in memory only", zap.String("task_id", id))
	}
	return true
}

func (r *taskRepository) ToggleCompletion(ctx context.Context, id string) (*domain.Task, bool) {
	tasks := r.GetAll(ctx)
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return nil, false
	}
	completed := !tasks[idx].Completed
	return r.Update(ctx, id, domain.TaskPatch{Completed: &completed})
}

func (r *taskRepository) Clear(ctx context.Context) bool {
	return r.blob.clear(ctx)
}

func indexOfTask(tasks []domain.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
