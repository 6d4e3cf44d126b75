package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/infrastructure/monitor"
	"github.com/fastygo/planner/pkg/httpcontext"
	"github.com/fastygo/planner/repository"
	"github.com/fastygo/planner/repository/kv"
	"github.com/fastygo/planner/repository/memory"
	"github.com/fastygo/planner/usecase/planner"
)

var now = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Status string          `json:"status"`
	Code   string          `json:"code"`
	Data   json.RawMessage `json:"data"`
	Error  struct {
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
	Meta struct {
		Count int `json:"count"`
		Total int `json:"total"`
	} `json:"meta"`
}

func newUseCase(store repository.Store) *planner.UseCase {
	clock := func() time.Time { return now }
	return planner.New(
		kv.NewTaskRepository(store, kv.WithClock(clock)),
		kv.NewCourseRepository(store, kv.WithClock(clock)),
		kv.NewSettingsRepository(store),
		nil,
		planner.WithClock(clock),
	)
}

func call(h fasthttp.RequestHandler, method, uri, body, id string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBodyString(body)
	}
	if id != "" {
		ctx.SetUserValue("id", id)
	}
	h(&ctx)
	return &ctx
}

func readEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env), string(ctx.Response.Body()))
	return env
}

func TestTaskLifecycle(t *testing.T) {
	uc := newUseCase(memory.New())
	h := NewTaskHandler(uc, httpcontext.NewAdapter(time.Second), nil)

	ctx := call(h.CreateTask, http.MethodPost, "/api/v1/tasks",
		`{"title":"Problem set 4","dueDate":"2025-04-03T23:59","priority":"high"}`, "")
	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	var created domain.Task
	require.NoError(t, json.Unmarshal(readEnvelope(t, ctx).Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)
	assert.NotEmpty(t, ctx.Response.Header.Peek("X-Request-ID"))

	ctx = call(h.UpdateTask, http.MethodPatch, "/api/v1/tasks/"+created.ID, `{"description":"odd numbers only"}`, created.ID)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = call(h.ToggleTask, http.MethodPost, "/api/v1/tasks/"+created.ID+"/toggle", "", created.ID)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	var toggled domain.Task
	require.NoError(t, json.Unmarshal(readEnvelope(t, ctx).Data, &toggled))
	assert.True(t, toggled.Completed)
	assert.Equal(t, "odd numbers only", toggled.Description)

	ctx = call(h.GetTasks, http.MethodGet, "/api/v1/tasks?status=completed", "", "")
	env := readEnvelope(t, ctx)
	assert.Equal(t, 1, env.Meta.Count)
	assert.Equal(t, 1, env.Meta.Total)

	ctx = call(h.GetTasks, http.MethodGet, "/api/v1/tasks?status=pending", "", "")
	assert.Equal(t, 0, readEnvelope(t, ctx).Meta.Count)

	ctx = call(h.DeleteTask, http.MethodDelete, "/api/v1/tasks/"+created.ID, "", created.ID)
	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())

	ctx = call(h.DeleteTask, http.MethodDelete, "/api/v1/tasks/"+created.ID, "", created.ID)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "NOT_FOUND", readEnvelope(t, ctx).Code)
}

func TestCreateTaskValidation(t *testing.T) {
	h := NewTaskHandler(newUseCase(memory.New()), nil, nil)

	ctx := call(h.CreateTask, http.MethodPost, "/api/v1/tasks", `{"title":"   "}`, "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := readEnvelope(t, ctx)
	assert.Equal(t, "INVALID", env.Code)
	assert.Equal(t, []string{"title is required", "dueDate is required", "priority is required"}, env.Error.Details)

	ctx = call(h.CreateTask, http.MethodPost, "/api/v1/tasks", `{"title":"x","dueDate":"next week"}`, "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "invalid payload", readEnvelope(t, ctx).Error.Message)

	ctx = call(h.UpdateTask, http.MethodPatch, "/api/v1/tasks/nope", `{"priority":"urgent"}`, "nope")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCourseAndSettings(t *testing.T) {
	uc := newUseCase(memory.New())
	courses := NewCourseHandler(uc, nil, nil)
	settings := NewSettingsHandler(uc, nil, nil)

	ctx := call(courses.GetCourses, http.MethodGet, "/api/v1/courses", "", "")
	env := readEnvelope(t, ctx)
	assert.Equal(t, 1, env.Meta.Count, "default course")

	ctx = call(courses.CreateCourse, http.MethodPost, "/api/v1/courses", `{"name":"Linear Algebra","code":"math220"}`, "")
	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	var created domain.Course
	require.NoError(t, json.Unmarshal(readEnvelope(t, ctx).Data, &created))
	assert.Equal(t, "MATH220", created.Code)

	ctx = call(courses.UpdateCourse, http.MethodPatch, "/api/v1/courses/x", `{"name":"Calc"}`, "x")
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	ctx = call(settings.UpdateSettings, http.MethodPatch, "/api/v1/settings", `{"theme":"dark"}`, "")
	var merged domain.Settings
	require.NoError(t, json.Unmarshal(readEnvelope(t, ctx).Data, &merged))
	assert.Equal(t, domain.Settings{Theme: "dark", Notifications: true, DefaultView: "dashboard"}, merged)

	ctx = call(settings.ReplaceSettings, http.MethodPut, "/api/v1/settings", `{"defaultView":"calendar"}`, "")
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, domain.Settings{Theme: "light", Notifications: true, DefaultView: "calendar"}, uc.Settings().Get(t.Context()))
}

func TestSettingsQuotaIsUnavailable(t *testing.T) {
	settings := NewSettingsHandler(newUseCase(memory.New(memory.WithQuota(8))), nil, nil)

	ctx := call(settings.ReplaceSettings, http.MethodPut, "/api/v1/settings", `{"theme":"dark"}`, "")
	assert.Equal(t, http.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, "UNAVAILABLE", readEnvelope(t, ctx).Code)
}

func TestExportImportClear(t *testing.T) {
	source := newUseCase(memory.New())
	_, err := source.AddTask(t.Context(), domain.Task{Title: "Essay draft", DueDate: domain.MustParseDate("2025-03-20"), Priority: domain.PriorityMedium})
	require.NoError(t, err)
	data := NewDataHandler(source, nil, nil)

	ctx := call(data.Export, http.MethodGet, "/api/v1/export", "", "")
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.Contains(t, string(ctx.Response.Header.Peek("Content-Disposition")), "academic-planner-data.json")
	document := string(ctx.Response.Body())

	ctx = call(data.Export, http.MethodGet, "/api/v1/export?format=csv", "", "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())

	ctx = call(data.Export, http.MethodGet, "/api/v1/export?format=xlsx", "", "")
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.True(t, strings.HasPrefix(string(ctx.Response.Body()), "PK"), "xlsx is a zip archive")

	target := newUseCase(memory.New())
	importer := NewDataHandler(target, nil, nil)
	ctx = call(importer.Import, http.MethodPost, "/api/v1/import", document, "")
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"tasks":1,"courses":1,"settings":true}`, string(readEnvelope(t, ctx).Data))
	assert.Equal(t, source.Tasks().GetAll(t.Context()), target.Tasks().GetAll(t.Context()))

	ctx = call(importer.Stats, http.MethodGet, "/api/v1/stats", "", "")
	var stats statsResponse
	require.NoError(t, json.Unmarshal(readEnvelope(t, ctx).Data, &stats))
	assert.Equal(t, 1, stats.Statistics.Total)
	assert.Equal(t, 1, stats.Statistics.Overdue)
	assert.Empty(t, stats.Upcoming)
	assert.Equal(t, map[string]int{"": 1}, stats.ByCourse)

	ctx = call(importer.Import, http.MethodPost, "/api/v1/import", `{"tasks":`, "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())

	ctx = call(importer.Clear, http.MethodDelete, "/api/v1/data", "", "")
	assert.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
	assert.Empty(t, target.Tasks().GetAll(t.Context()))
}

func TestHealth(t *testing.T) {
	mon := monitor.New(memory.New(), "memory", time.Minute, nil)
	h := NewHealthHandler(mon, nil, nil)

	ctx := call(h.Check, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	down := NewHealthHandler(monitor.New(nil, "redis", time.Minute, nil), nil, nil)
	ctx = call(down.Check, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, "DEGRADED", readEnvelope(t, ctx).Code)

	probed := call(h.Check, http.MethodGet, "/health?probe=true", "", "")
	assert.Equal(t, http.StatusOK, probed.Response.StatusCode())
	assert.Contains(t, string(probed.Response.Body()), `"consecutive_failures":0`)
}
