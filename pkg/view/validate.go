package view

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fastygo/planner/domain"
)

// ValidationResult lists the problems found in a form, in the order the
// required fields were given.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks that every required field is present and non-blank.
// Strings are trimmed before the check; nil values and empty strings,
// slices and maps count as missing.
func Validate(fields map[string]any, required ...string) ValidationResult {
	errs := make([]string, 0)
	for _, name := range required {
		if isBlank(fields[name]) {
			errs = append(errs, fmt.Sprintf("%s is required", name))
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return true
		}
		return strings.TrimSpace(v.String()) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// TaskFields exposes a task as a form for Validate.
func TaskFields(t domain.Task) map[string]any {
	return map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"dueDate":     t.DueDate,
		"priority":    t.Priority,
		"courseId":    t.CourseID,
	}
}

// CourseFields exposes a course as a form for Validate.
func CourseFields(c domain.Course) map[string]any {
	return map[string]any{
		"name":       c.Name,
		"code":       c.Code,
		"color":      c.Color,
		"instructor": c.Instructor,
	}
}
