package repository

import "context"

// Keys under which the three collections are persisted. They are namespaced
// so the planner can share a store with unrelated data.
const (
	KeyTasks    = "academicPlanner_tasks"
	KeyCourses  = "academicPlanner_courses"
	KeySettings = "academicPlanner_settings"
)

// Keys lists every key owned by the planner.
var Keys = []string{KeyTasks, KeyCourses, KeySettings}

// Store is a string-keyed durable blob store. Get returns
// domain.ErrKeyNotFound for absent keys; deleting an absent key succeeds.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by an external service.
type Pinger interface {
	Ping(ctx context.Context) error
}
