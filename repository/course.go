package repository

import (
	"context"

	"github.com/fastygo/planner/domain"
)

type CourseRepository interface {
	GetAll(ctx context.Context) []domain.Course
	SaveAll(ctx context.Context, courses []domain.Course) bool
	Add(ctx context.Context, course domain.Course) domain.Course
	Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, bool)
	// Remove reports whether id was present. A failed write is logged, not reported.
	Remove(ctx context.Context, id string) bool
	Clear(ctx context.Context) bool
}
