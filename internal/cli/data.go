package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/app"
	"github.com/fastygo/planner/pkg/exporter"
)

func (c *command) statsCmd() *cobra.Command {
	var upcoming int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics and upcoming tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				stats := a.Planner.Dashboard(ctx)
				next := a.Planner.UpcomingTasks(ctx, upcoming)
				if out.json {
					return out.envelope(map[string]interface{}{
						"statistics": stats,
						"upcoming":   next,
					})
				}
				out.line("Total: %d  Completed: %d  Pending: %d  Overdue: %d  Completion: %d%%",
					stats.Total, stats.Completed, stats.Pending, stats.Overdue, stats.CompletionRate)
				if len(next) == 0 {
					return nil
				}
				out.line("\nUpcoming:")
				return out.tasks(next, a.Planner.Courses().GetAll(ctx), a.Planner.Now())
			})
		},
	}
	cmd.Flags().IntVar(&upcoming, "upcoming", 5, "Number of upcoming tasks to show, 0 for all")
	return cmd
}

func (c *command) exportCmd() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every collection to a JSON, YAML or XLSX file",
		Long: `Write tasks, courses and settings to a document.

Examples:
  planner export                          # academic-planner-data.json
  planner export --format yaml --output backup.yaml
  planner export --output - | jq '.tasks | length'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := chooseFormat(format, output)
			if err != nil {
				return err
			}
			if output == "" {
				output = exporter.DefaultFileName(f)
			}

			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				snapshot := a.Planner.ExportAll(ctx)
				var buf bytes.Buffer
				if err := exporter.Encode(&buf, snapshot, f); err != nil {
					return err
				}
				if output == "-" {
					_, err := out.out.Write(buf.Bytes())
					return err
				}
				if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				if out.json {
					return out.envelope(map[string]interface{}{
						"path":    output,
						"bytes":   buf.Len(),
						"tasks":   len(snapshot.Tasks),
						"courses": len(snapshot.Courses),
					})
				}
				out.line("Exported %d tasks and %d courses to %s (%s)",
					len(snapshot.Tasks), len(snapshot.Courses), output, humanize.Bytes(uint64(buf.Len())))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file, - for stdout (default academic-planner-data.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, yaml or xlsx (default from --output extension, else json)")
	return cmd
}

func (c *command) importCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the collections present in an exported document",
		Long: `Read a JSON or YAML document produced by export. Each of tasks, courses and
settings found in the document replaces the stored collection; collections
missing from the document are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := chooseFormat(format, path)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}
			snapshot, err := exporter.Decode(r, f)
			if err != nil {
				return domain.WrapError(domain.ErrCodeInvalid, "invalid import document", err)
			}

			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				if !a.Planner.ImportAll(ctx, snapshot) {
					return domain.WrapError(domain.ErrCodeUnavailable, "import incomplete", domain.ErrStoreUnavailable)
				}
				if out.json {
					return out.envelope(map[string]interface{}{
						"tasks":    len(snapshot.Tasks),
						"courses":  len(snapshot.Courses),
						"settings": snapshot.Settings != nil,
					})
				}
				out.line("Imported %d tasks and %d courses (settings replaced: %t)",
					len(snapshot.Tasks), len(snapshot.Courses), snapshot.Settings != nil)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from file extension, else json)")
	return cmd
}

func (c *command) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored task, course and preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return usageError("reset deletes all planner data; rerun with --yes to confirm")
			}
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				if !a.Planner.ClearAll(ctx) {
					return domain.WrapError(domain.ErrCodeUnavailable, "reset incomplete", domain.ErrStoreUnavailable)
				}
				if out.json {
					return out.envelope(map[string]bool{"cleared": true})
				}
				out.line("All planner data deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func chooseFormat(flag, path string) (exporter.Format, error) {
	if flag != "" {
		f, err := exporter.ParseFormat(flag)
		if err != nil {
			return "", usageError(err.Error())
		}
		return f, nil
	}
	return exporter.FormatFromPath(path), nil
}
