package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/view"
	"github.com/fastygo/planner/repository"
)

// UseCase combines the task, course and settings repositories into the
// operations presentation layers need.
type UseCase struct {
	tasks    repository.TaskRepository
	courses  repository.CourseRepository
	settings repository.SettingsRepository
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes a UseCase.
type Option func(*UseCase)

// WithClock overrides the reference time used for status derivation and exports.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func New(
	tasks repository.TaskRepository,
	courses repository.CourseRepository,
	settings repository.SettingsRepository,
	logger *zap.Logger,
	opts ...Option,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	uc := &UseCase{
		tasks:    tasks,
		courses:  courses,
		settings: settings,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *UseCase) Tasks() repository.TaskRepository        { return uc.tasks }
func (uc *UseCase) Courses() repository.CourseRepository    { return uc.courses }
func (uc *UseCase) Settings() repository.SettingsRepository { return uc.settings }

// Now returns the reference time used by derived views.
func (uc *UseCase) Now() time.Time {
	return uc.now()
}

// ListTasks returns the stored tasks matching criteria, ordered by due date.
func (uc *UseCase) ListTasks(ctx context.Context, criteria view.Criteria, order view.SortOrder) []domain.Task {
	now := uc.now()
	return view.SortByDueDate(view.Filter(uc.tasks.GetAll(ctx), criteria, now), order)
}

// Dashboard computes statistics over every stored task.
func (uc *UseCase) Dashboard(ctx context.Context) view.Statistics {
	return view.ComputeStatistics(uc.tasks.GetAll(ctx), uc.now())
}

// UpcomingTasks returns the next limit pending tasks.
func (uc *UseCase) UpcomingTasks(ctx context.Context, limit int) []domain.Task {
	return view.Upcoming(uc.tasks.GetAll(ctx), uc.now(), limit)
}

// CourseTaskCounts returns how many tasks reference each course.
func (uc *UseCase) CourseTaskCounts(ctx context.Context) map[string]int {
	return view.CountByCourse(uc.tasks.GetAll(ctx))
}

// ExportAll captures all three collections.
func (uc *UseCase) ExportAll(ctx context.Context) domain.Snapshot {
	settings := uc.settings.Get(ctx)
	return domain.Snapshot{
		Tasks:      uc.tasks.GetAll(ctx),
		Courses:    uc.courses.GetAll(ctx),
		Settings:   &settings,
		ExportedAt: uc.now(),
	}
}

// ImportAll overwrites each collection present in snapshot. Absent
// collections are left untouched. It reports whether every write succeeded.
func (uc *UseCase) ImportAll(ctx context.Context, snapshot domain.Snapshot) bool {
	ok := true
	if snapshot.Tasks != nil {
		ok = uc.tasks.SaveAll(ctx, snapshot.Tasks) && ok
	}
	if snapshot.Courses != nil {
		ok = uc.courses.SaveAll(ctx, snapshot.Courses) && ok
	}
	if snapshot.Settings != nil {
		ok = uc.settings.Save(ctx, *snapshot.Settings) && ok
	}
	if !ok {
		uc.logger.Error("import incomplete",
			zap.Bool("tasks", snapshot.Tasks != nil),
			zap.Bool("courses", snapshot.Courses != nil),
			zap.Bool("settings", snapshot.Settings != nil))
		return false
	}
	uc.logger.Info("import applied",
		zap.Int("tasks", len(snapshot.Tasks)),
		zap.Int("courses", len(snapshot.Courses)),
		zap.Bool("settings", snapshot.Settings != nil))
	return true
}

// ClearAll removes every persisted collection.
func (uc *UseCase) ClearAll(ctx context.Context) bool {
	tasksOK := uc.tasks.Clear(ctx)
	coursesOK := uc.courses.Clear(ctx)
	settingsOK := uc.settings.Clear(ctx)
	if !(tasksOK && coursesOK && settingsOK) {
		uc.logger.Error("clear incomplete",
			zap.Bool("tasks", tasksOK),
			zap.Bool("courses", coursesOK),
			zap.Bool("settings", settingsOK))
		return false
	}
	uc.logger.Info("all planner data cleared")
	return true
}
