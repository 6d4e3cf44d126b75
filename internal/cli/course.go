package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/app"
)

const defaultCourseColor = "#3b82f6"

func (c *command) courseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}
	cmd.AddCommand(c.courseAddCmd(), c.courseListCmd(), c.courseUpdateCmd(), c.courseRemoveCmd())
	return cmd
}

func (c *command) courseAddCmd() *cobra.Command {
	var course domain.Course
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				created, err := a.Planner.AddCourse(ctx, course)
				if err != nil {
					return err
				}
				return out.course("Created", created)
			})
		},
	}
	cmd.Flags().StringVar(&course.Name, "name", "", "Course name (required)")
	cmd.Flags().StringVar(&course.Code, "code", "", "Course code, stored upper-case (required)")
	cmd.Flags().StringVar(&course.Color, "color", defaultCourseColor, "Display color")
	cmd.Flags().StringVar(&course.Instructor, "instructor", "", "Instructor name")
	return cmd
}

func (c *command) courseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List courses with their task counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				return out.courses(a.Planner.Courses().GetAll(ctx), a.Planner.CourseTaskCounts(ctx))
			})
		},
	}
}

func (c *command) courseUpdateCmd() *cobra.Command {
	var name, code, color, instructor string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a course; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch domain.CoursePatch
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("code") {
				patch.Code = &code
			}
			if flags.Changed("color") {
				patch.Color = &color
			}
			if flags.Changed("instructor") {
				patch.Instructor = &instructor
			}
			if patch == (domain.CoursePatch{}) {
				return usageError("nothing to update: pass at least one field flag")
			}

			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				id, err := resolveCourseID(ctx, a, args[0])
				if err != nil {
					return err
				}
				updated, err := a.Planner.UpdateCourse(ctx, id, patch)
				if err != nil {
					return err
				}
				return out.course("Updated", *updated)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&code, "code", "", "New code")
	cmd.Flags().StringVar(&color, "color", "", "New color")
	cmd.Flags().StringVar(&instructor, "instructor", "", "New instructor")
	return cmd
}

func (c *command) courseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a course; its tasks keep their course reference",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				id, err := resolveCourseID(ctx, a, args[0])
				if err != nil {
					return err
				}
				if err := a.Planner.RemoveCourse(ctx, id); err != nil {
					return err
				}
				if out.json {
					return out.envelope(map[string]string{"id": id})
				}
				out.line("Deleted course %s", id)
				return nil
			})
		},
	}
}

func resolveCourseID(ctx context.Context, a *app.App, ref string) (string, error) {
	return resolveID(a.Planner.Courses().GetAll(ctx), func(c domain.Course) string { return c.ID }, ref, domain.ErrCourseNotFound)
}
