package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/planner/api/handler"
)

type Handlers struct {
	Task     *apiHandler.TaskHandler
	Course   *apiHandler.CourseHandler
	Settings *apiHandler.SettingsHandler
	Data     *apiHandler.DataHandler
	Health   *apiHandler.HealthHandler
}

// New builds the route table. Middlewares wrap the whole router, outermost first.
func New(handlers Handlers, middlewares ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	api := r.Group("/api/v1")

	api.GET("/tasks", handlers.Task.GetTasks)
	api.POST("/tasks", handlers.Task.CreateTask)
	api.PATCH("/tasks/{id}", handlers.Task.UpdateTask)
	api.POST("/tasks/{id}/toggle", handlers.Task.ToggleTask)
	api.DELETE("/tasks/{id}", handlers.Task.DeleteTask)

	api.GET("/courses", handlers.Course.GetCourses)
	api.POST("/courses", handlers.Course.CreateCourse)
	api.PATCH("/courses/{id}", handlers.Course.UpdateCourse)
	api.DELETE("/courses/{id}", handlers.Course.DeleteCourse)

	api.GET("/settings", handlers.Settings.GetSettings)
	api.PUT("/settings", handlers.Settings.ReplaceSettings)
	api.PATCH("/settings", handlers.Settings.UpdateSettings)

	api.GET("/stats", handlers.Data.Stats)
	api.GET("/export", handlers.Data.Export)
	api.POST("/import", handlers.Data.Import)
	api.DELETE("/data", handlers.Data.Clear)

	h := r.Handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
