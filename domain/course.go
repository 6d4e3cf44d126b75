package domain

import "time"

// DefaultCourseID identifies the built-in course that exists before any user course.
const DefaultCourseID = "default-1"

// Course groups tasks belonging to one class.
type Course struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Code       string    `json:"code" yaml:"code"`
	Color      string    `json:"color" yaml:"color"`
	Instructor string    `json:"instructor,omitempty" yaml:"instructor,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// DefaultCourses returns the collection used when nothing has been stored yet.
func DefaultCourses() []Course {
	return []Course{
		{
			ID:         DefaultCourseID,
			Name:       "General",
			Code:       "GEN",
			Color:      "#3b82f6",
			Instructor: "",
		},
	}
}

// CoursePatch describes a partial course update with the same semantics as TaskPatch.
type CoursePatch struct {
	Name       *string `json:"name,omitempty"`
	Code       *string `json:"code,omitempty"`
	Color      *string `json:"color,omitempty"`
	Instructor *string `json:"instructor,omitempty"`
}

// Apply returns a copy of c with the patch fields replaced.
func (p CoursePatch) Apply(c Course) Course {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Instructor != nil {
		c.Instructor = *p.Instructor
	}
	return c
}
