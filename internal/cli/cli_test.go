package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/app"
	"github.com/fastygo/planner/internal/config"
	"github.com/fastygo/planner/internal/infrastructure/storage"
	"github.com/fastygo/planner/repository/memory"
)

func memoryOpener() Opener {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}
	handle := &storage.Handle{Store: memory.New(), Backend: config.BackendMemory}
	return func(context.Context) (*app.App, error) {
		return app.FromHandle(cfg, handle, nil), nil
	}
}

func runCLI(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeData(t *testing.T, output string, dst interface{}) {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &env), output)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func TestTaskCommands(t *testing.T) {
	open := memoryOpener()

	out, err := runCLI(t, open, "task", "add", "--title", "Lab report", "--due", "2099-03-14T17:00", "--priority", "high", "--json")
	require.NoError(t, err)
	var created domain.Task
	decodeData(t, out, &created)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.False(t, created.Completed)

	_, err = runCLI(t, open, "task", "add", "--title", "Old quiz", "--due", "2000-01-01")
	require.NoError(t, err)

	out, err = runCLI(t, open, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lab report")
	assert.Contains(t, out, "overdue")
	assert.Less(t, strings.Index(out, "Old quiz"), strings.Index(out, "Lab report"), "ascending due date")

	out, err = runCLI(t, open, "task", "list", "--status", "overdue", "--json")
	require.NoError(t, err)
	var overdue []domain.Task
	decodeData(t, out, &overdue)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Old quiz", overdue[0].Title)

	suffix := created.ID[len(created.ID)-12:]
	out, err = runCLI(t, open, "task", "done", suffix, "--json")
	require.NoError(t, err)
	var toggled domain.Task
	decodeData(t, out, &toggled)
	assert.True(t, toggled.Completed)

	_, err = runCLI(t, open, "task", "update", created.ID, "--title", "Final lab report", "--completed=false")
	require.NoError(t, err)

	out, err = runCLI(t, open, "task", "rm", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task "+created.ID)

	_, err = runCLI(t, open, "task", "rm", created.ID)
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestTaskValidationExitCodes(t *testing.T) {
	open := memoryOpener()

	_, err := runCLI(t, open, "task", "add", "--due", "2099-01-01")
	assert.Equal(t, ExitValidation, ExitCode(err))

	_, err = runCLI(t, open, "task", "add", "--title", "x", "--due", "soon")
	assert.Equal(t, ExitValidation, ExitCode(err))

	_, err = runCLI(t, open, "task", "add", "--title", "x", "--due", "2099-01-01", "--priority", "urgent")
	assert.Equal(t, ExitValidation, ExitCode(err))

	_, err = runCLI(t, open, "task", "update", "anything")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestCourseAndSettingsCommands(t *testing.T) {
	open := memoryOpener()

	out, err := runCLI(t, open, "course", "add", "--name", "Microeconomics", "--code", "econ101", "--json")
	require.NoError(t, err)
	var course domain.Course
	decodeData(t, out, &course)
	assert.Equal(t, "ECON101", course.Code)
	assert.Equal(t, defaultCourseColor, course.Color)

	_, err = runCLI(t, open, "task", "add", "--title", "Problem set", "--due", "2099-02-01", "--course", course.ID)
	require.NoError(t, err)

	out, err = runCLI(t, open, "task", "add", "--title", "Old notes", "--due", "2099-03-01", "--course", "archived-42", "--json")
	require.NoError(t, err, "unknown course ids are stored as given")
	var orphan domain.Task
	decodeData(t, out, &orphan)
	assert.Equal(t, "archived-42", orphan.CourseID)

	out, err = runCLI(t, open, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "GEN")
	assert.Contains(t, out, "ECON101")

	_, err = runCLI(t, open, "course", "update", course.ID, "--instructor", "Dr. Keynes")
	require.NoError(t, err)
	_, err = runCLI(t, open, "course", "rm", "default-1")
	require.NoError(t, err)

	out, err = runCLI(t, open, "course", "list", "--json")
	require.NoError(t, err)
	var courses []domain.Course
	decodeData(t, out, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "Dr. Keynes", courses[0].Instructor)

	_, err = runCLI(t, open, "settings", "set", "--theme", "dark", "--notifications=false")
	require.NoError(t, err)
	out, err = runCLI(t, open, "settings", "show", "--json")
	require.NoError(t, err)
	var settings domain.Settings
	decodeData(t, out, &settings)
	assert.Equal(t, domain.Settings{Theme: "dark", Notifications: false, DefaultView: "dashboard"}, settings)

	_, err = runCLI(t, open, "settings", "set")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExportResetImport(t *testing.T) {
	open := memoryOpener()
	path := filepath.Join(t.TempDir(), "planner.yaml")

	_, err := runCLI(t, open, "task", "add", "--title", "Thesis outline", "--due", "2099-06-01")
	require.NoError(t, err)

	out, err := runCLI(t, open, "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 tasks and 1 courses to "+path)

	out, err = runCLI(t, open, "export", "--output", "-", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"exportedAt"`)

	_, err = runCLI(t, open, "reset")
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, err = runCLI(t, open, "reset", "--yes")
	require.NoError(t, err)
	out, err = runCLI(t, open, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")

	out, err = runCLI(t, open, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 tasks")

	out, err = runCLI(t, open, "stats", "--json")
	require.NoError(t, err)
	var stats struct {
		Statistics struct {
			Total   int `json:"total"`
			Pending int `json:"pending"`
		} `json:"statistics"`
		Upcoming []domain.Task `json:"upcoming"`
	}
	decodeData(t, out, &stats)
	assert.Equal(t, 1, stats.Statistics.Total)
	assert.Equal(t, 1, stats.Statistics.Pending)
	require.Len(t, stats.Upcoming, 1)
	assert.Equal(t, "Thesis outline", stats.Upcoming[0].Title)

	_, err = runCLI(t, open, "export", "--format", "csv")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestOpenerFailure(t *testing.T) {
	failing := func(context.Context) (*app.App, error) { return nil, errors.New("store offline") }
	_, err := runCLI(t, failing, "task", "list")
	assert.EqualError(t, err, "store offline")
	assert.Equal(t, ExitError, ExitCode(err))
}
