package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/app"
	"github.com/fastygo/planner/pkg/view"
)

func (c *command) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(c.taskAddCmd(), c.taskListCmd(), c.taskUpdateCmd(), c.taskDoneCmd(), c.taskRemoveCmd())
	return cmd
}

func (c *command) taskAddCmd() *cobra.Command {
	var (
		title, description, due, priority, course string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  planner task add --title "Lab report" --due 2025-03-14T17:00 --priority high --course <course-id>
  planner task add --title "Read chapter 4" --due 2025-03-10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := domain.ParseDate(due)
			if err != nil {
				return domain.NewValidationError([]string{err.Error()})
			}
			p, _ := domain.ParsePriority(priority)
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				courseID, err := optionalCourseID(ctx, a, course)
				if err != nil {
					return err
				}
				created, err := a.Planner.AddTask(ctx, domain.Task{
					Title:       title,
					Description: description,
					DueDate:     dueDate,
					Priority:    p,
					CourseID:    courseID,
				})
				if err != nil {
					return err
				}
				return out.task("Created", created, a.Planner.Now())
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&due, "due", "", "Due date: YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339 (required)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: low, medium or high")
	cmd.Flags().StringVar(&course, "course", "", "Course id")
	return cmd
}

func (c *command) taskListCmd() *cobra.Command {
	var criteria view.Criteria
	var order string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks ordered by due date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				tasks := a.Planner.ListTasks(ctx, criteria, view.SortOrder(order))
				return out.tasks(tasks, a.Planner.Courses().GetAll(ctx), a.Planner.Now())
			})
		},
	}
	cmd.Flags().StringVar(&criteria.Search, "search", "", "Case-insensitive text in title or description")
	cmd.Flags().StringVar(&criteria.Priority, "priority", view.All, "Priority filter")
	cmd.Flags().StringVar(&criteria.Course, "course", view.All, "Course id filter")
	cmd.Flags().StringVar(&criteria.Status, "status", view.All, "Status filter: pending, completed or overdue")
	cmd.Flags().StringVar(&order, "order", string(view.Ascending), "Due date order: asc or desc")
	return cmd
}

func (c *command) taskUpdateCmd() *cobra.Command {
	var (
		title, description, due, priority, course string
		completed                                 bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a task; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch domain.TaskPatch
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("due") {
				d, err := domain.ParseDate(due)
				if err != nil {
					return domain.NewValidationError([]string{err.Error()})
				}
				patch.DueDate = &d
			}
			if flags.Changed("priority") {
				p, _ := domain.ParsePriority(priority)
				patch.Priority = &p
			}
			if flags.Changed("completed") {
				patch.Completed = &completed
			}
			if patch.IsEmpty() && !flags.Changed("course") {
				return usageError("nothing to update: pass at least one field flag")
			}

			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				if flags.Changed("course") {
					courseID, err := optionalCourseID(ctx, a, course)
					if err != nil {
						return err
					}
					patch.CourseID = &courseID
				}
				id, err := resolveTaskID(ctx, a, args[0])
				if err != nil {
					return err
				}
				updated, err := a.Planner.UpdateTask(ctx, id, patch)
				if err != nil {
					return err
				}
				return out.task("Updated", *updated, a.Planner.Now())
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&course, "course", "", "New course id, empty to detach")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completion flag")
	return cmd
}

func (c *command) taskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle the completion of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				id, err := resolveTaskID(ctx, a, args[0])
				if err != nil {
					return err
				}
				toggled, err := a.Planner.ToggleTask(ctx, id)
				if err != nil {
					return err
				}
				return out.task("Toggled", *toggled, a.Planner.Now())
			})
		},
	}
}

func (c *command) taskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				id, err := resolveTaskID(ctx, a, args[0])
				if err != nil {
					return err
				}
				if err := a.Planner.RemoveTask(ctx, id); err != nil {
					return err
				}
				if out.json {
					return out.envelope(map[string]string{"id": id})
				}
				out.line("Deleted task %s", id)
				return nil
			})
		},
	}
}

func resolveTaskID(ctx context.Context, a *app.App, ref string) (string, error) {
	return resolveID(a.Planner.Tasks().GetAll(ctx), func(t domain.Task) string { return t.ID }, ref, domain.ErrTaskNotFound)
}

// optionalCourseID expands ref against the stored courses. Course ids on
// tasks are not validated, so a ref matching no course is kept verbatim and
// an empty ref leaves the task without a course.
func optionalCourseID(ctx context.Context, a *app.App, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil
	}
	id, err := resolveCourseID(ctx, a, ref)
	if errors.Is(err, domain.ErrCourseNotFound) {
		return ref, nil
	}
	return id, err
}
