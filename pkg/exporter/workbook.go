package exporter

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/view"
)

const (
	sheetTasks   = "Tasks"
	sheetCourses = "Courses"
	sheetSummary = "Summary"
)

var (
	taskHeaders   = []interface{}{"Title", "Course", "Priority", "Due", "Status", "Completed", "Created"}
	courseHeaders = []interface{}{"Code", "Name", "Instructor", "Color"}
)

func writeWorkbook(w io.Writer, snapshot domain.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTasks); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetCourses); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E5E7EB"}},
	})
	if err != nil {
		return err
	}

	if err := writeTasks(f, snapshot, headerStyle); err != nil {
		return err
	}
	if err := writeCourses(f, snapshot.Courses, headerStyle); err != nil {
		return err
	}
	if err := writeSummary(f, snapshot); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func writeTasks(f *excelize.File, snapshot domain.Snapshot, headerStyle int) error {
	if err := writeHeader(f, sheetTasks, taskHeaders, headerStyle); err != nil {
		return err
	}

	courseNames := make(map[string]string, len(snapshot.Courses))
	for _, c := range snapshot.Courses {
		courseNames[c.ID] = c.Name
	}

	for i, task := range snapshot.Tasks {
		due := ""
		if !task.DueDate.IsZero() {
			due = view.FormatDate(task.DueDate.Time)
		}
		created := ""
		if !task.CreatedAt.IsZero() {
			created = view.FormatDate(task.CreatedAt)
		}
		course := courseNames[task.CourseID]
		if course == "" {
			course = task.CourseID
		}
		row := []interface{}{
			task.Title,
			course,
			strings.ToUpper(string(task.Priority)),
			due,
			string(task.Status(snapshot.ExportedAt)),
			task.Completed,
			created,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetTasks, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetTasks, "A", "A", 40)
}

func writeCourses(f *excelize.File, courses []domain.Course, headerStyle int) error {
	if err := writeHeader(f, sheetCourses, courseHeaders, headerStyle); err != nil {
		return err
	}
	for i, c := range courses {
		row := []interface{}{c.Code, c.Name, c.Instructor, c.Color}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetCourses, cell, &row); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetCourses, "B", "C", 30)
}

func writeSummary(f *excelize.File, snapshot domain.Snapshot) error {
	stats := view.ComputeStatistics(snapshot.Tasks, snapshot.ExportedAt)
	rows := [][]interface{}{
		{"Exported", view.FormatDate(snapshot.ExportedAt)},
		{"Total", stats.Total},
		{"Completed", stats.Completed},
		{"Pending", stats.Pending},
		{"Overdue", stats.Overdue},
		{"Completion rate (%)", stats.CompletionRate},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSummary, "A", "A", 22)
}

func writeHeader(f *excelize.File, sheet string, headers []interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}
