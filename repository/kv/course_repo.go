package kv

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

type courseRepository struct {
	blob blob[[]domain.Course]
	opts options
}

// NewCourseRepository returns a CourseRepository persisting to store. Until
// a course collection is stored, reads return domain.DefaultCourses.
func NewCourseRepository(store repository.Store, opts ...Option) repository.CourseRepository {
	o := buildOptions(opts)
	return &courseRepository{
		blob: blob[[]domain.Course]{
			store:      store,
			key:        repository.KeyCourses,
			collection: "courses",
			logger:     o.logger,
			fallback:   domain.DefaultCourses,
		},
		opts: o,
	}
}

func (r *courseRepository) GetAll(ctx context.Context) []domain.Course {
	return r.blob.load(ctx)
}

func (r *courseRepository) SaveAll(ctx context.Context, courses []domain.Course) bool {
	if courses == nil {
		courses = []domain.Course{}
	}
	return r.blob.save(ctx, courses)
}

func (r *courseRepository) Add(ctx context.Context, course domain.Course) domain.Course {
	courses := r.GetAll(ctx)

	course.ID = uniqueID(r.opts.newID, func(id string) bool { return indexOfCourse(courses, id) >= 0 })
	course.CreatedAt = r.opts.now()
	course.UpdatedAt = time.Time{}

	courses = append(courses, course)
	if !r.SaveAll(ctx, courses) {
		r.opts.logger.Warn("course added in memory only", zap.String("course_id", course.ID))
	}
	return course
}

func (r *courseRepository) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, bool) {
	courses := r.GetAll(ctx)
	idx := indexOfCourse(courses, id)
	if idx < 0 {
		return nil, false
	}

	updated := patch.Apply(courses[idx])
	updated.UpdatedAt = r.opts.now()
	courses[idx] = updated

	if !r.SaveAll(ctx, courses) {
		r.opts.logger.Warn("course updated in memory only", zap.String("course_id", id))
	}
	return &updated, true
}

func (r *courseRepository) Remove(ctx context.Context, id string) bool {
	courses := r.GetAll(ctx)
	kept := make([]domain.Course, 0, len(courses))
	for _, course := range courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	if len(kept) == len(courses) {
		return false
	}
	if !r.SaveAll(ctx, kept) {
		r.opts.logger.Warn("course removed in memory only", zap.String("course_id", id))
	}
	return true
}

func (r *courseRepository) Clear(ctx context.Context) bool {
	return r.blob.clear(ctx)
}

func indexOfCourse(courses []domain.Course, id string) int {
	for i := range courses {
		if courses[i].ID == id {
			return i
		}
	}
	return -1
}
