// Package cli implements the planner command tree.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/planner/internal/app"
	"github.com/fastygo/planner/internal/config"
	"github.com/fastygo/planner/pkg/logger"
)

// Opener builds the application container for one command invocation.
type Opener func(ctx context.Context) (*app.App, error)

// DefaultOpener loads configuration from the environment and opens the
// configured store.
func DefaultOpener(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Output:   os.Stderr,

		Service:     cfg.AppName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, zapLogger)
}

type command struct {
	open Opener
	json bool
}

// NewRootCmd assembles the planner command tree.
func NewRootCmd(open Opener) *cobra.Command {
	if open == nil {
		open = DefaultOpener
	}
	c := &command{open: open}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Academic planner - track coursework, courses and deadlines",
		Long:          `planner keeps tasks, courses and preferences in a local store and can serve them over a JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.json, "json", false, "Output in JSON format")

	root.AddCommand(
		c.taskCmd(),
		c.courseCmd(),
		c.settingsCmd(),
		c.statsCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.resetCmd(),
		c.serveCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd(DefaultOpener)
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return ExitCode(err)
	}
	return ExitSuccess
}

// run opens the app, hands it to fn and closes it afterwards.
func (c *command) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App, p printer) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger.Warn("failed to close store", zap.Error(err))
		}
	}()
	return fn(ctx, a, printer{out: cmd.OutOrStdout(), json: c.json})
}
