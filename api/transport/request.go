package transport

import "github.com/fastygo/planner/domain"

// TaskRequest is the body of POST /api/v1/tasks.
type TaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     domain.Date     `json:"dueDate"`
	Priority    domain.Priority `json:"priority"`
	CourseID    string          `json:"courseId"`
}

func (r TaskRequest) Task() domain.Task {
	return domain.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		CourseID:    r.CourseID,
	}
}

// CourseRequest is the body of POST /api/v1/courses.
type CourseRequest struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Color      string `json:"color"`
	Instructor string `json:"instructor"`
}

func (r CourseRequest) Course() domain.Course {
	return domain.Course{
		Name:       r.Name,
		Code:       r.Code,
		Color:      r.Color,
		Instructor: r.Instructor,
	}
}

// ImportResult reports what an import replaced.
type ImportResult struct {
	Tasks    int  `json:"tasks"`
	Courses  int  `json:"courses"`
	Settings bool `json:"settings"`
}
