package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/view"
)

// printer writes either human-readable text or a JSON envelope.
type printer struct {
	out  io.Writer
	json bool
}

func (p printer) envelope(data interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func (p printer) line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p printer) tasks(tasks []domain.Task, courses []domain.Course, now time.Time) error {
	if p.json {
		return p.envelope(tasks)
	}
	if len(tasks) == 0 {
		p.line("No tasks found")
		return nil
	}

	codes := make(map[string]string, len(courses))
	for _, c := range courses {
		codes[c.ID] = c.Code
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOURSE\tPRIORITY\tDUE\tSTATUS")
	for _, t := range tasks {
		due := "-"
		if !t.DueDate.IsZero() {
			due = fmt.Sprintf("%s (%s)", view.FormatDate(t.DueDate.Time), view.FormatRelativeTime(t.DueDate.Time, now))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), t.Title, orDash(codes[t.CourseID]), t.Priority, due, t.Status(now))
	}
	return w.Flush()
}

func (p printer) task(verb string, t domain.Task, now time.Time) error {
	if p.json {
		return p.envelope(t)
	}
	p.line("%s task %s: %s [%s, %s]", verb, t.ID, t.Title, t.Priority, t.Status(now))
	return nil
}

func (p printer) courses(courses []domain.Course, counts map[string]int) error {
	if p.json {
		return p.envelope(courses)
	}
	if len(courses) == 0 {
		p.line("No courses found")
		return nil
	}
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tINSTRUCTOR\tCOLOR\tTASKS")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			shortID(c.ID), c.Code, c.Name, orDash(c.Instructor), c.Color, counts[c.ID])
	}
	return w.Flush()
}

func (p printer) course(verb string, c domain.Course) error {
	if p.json {
		return p.envelope(c)
	}
	p.line("%s course %s: %s (%s)", verb, c.ID, c.Name, c.Code)
	return nil
}

func (p printer) settings(s domain.Settings) error {
	if p.json {
		return p.envelope(s)
	}
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "theme\t%s\n", s.Theme)
	fmt.Fprintf(w, "notifications\t%t\n", s.Notifications)
	fmt.Fprintf(w, "defaultView\t%s\n", s.DefaultView)
	return w.Flush()
}

func shortID(id string) string {
	// The last UUID group is random; it is enough to pick a record.
	if len(id) > 8 && strings.Count(id, "-") == 4 {
		return id[len(id)-12:]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
