package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/internal/app"
)

func (c *command) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}
	cmd.AddCommand(c.settingsShowCmd(), c.settingsSetCmd())
	return cmd
}

func (c *command) settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				return out.settings(a.Planner.Settings().Get(ctx))
			})
		},
	}
}

func (c *command) settingsSetCmd() *cobra.Command {
	var theme, defaultView string
	var notifications bool
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch domain.SettingsPatch
			if flags.Changed("theme") {
				patch.Theme = &theme
			}
			if flags.Changed("notifications") {
				patch.Notifications = &notifications
			}
			if flags.Changed("default-view") {
				patch.DefaultView = &defaultView
			}
			if patch == (domain.SettingsPatch{}) {
				return usageError("nothing to set: pass --theme, --notifications or --default-view")
			}
			return c.run(cmd, func(ctx context.Context, a *app.App, out printer) error {
				merged, err := a.Planner.UpdateSettings(ctx, patch)
				if err != nil {
					return err
				}
				return out.settings(merged)
			})
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "Color theme, e.g. light or dark")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Enable reminders")
	cmd.Flags().StringVar(&defaultView, "default-view", "", "View opened on start")
	return cmd
}
