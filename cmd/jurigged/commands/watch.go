package commands

import (
	"github.com/SummerStorm/jurigged/internal/adapters/config"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [modules...]",
		Short: "Load the given modules and watch their sources for edits",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The wiring loads the default config path; an explicit flag
			// reloads settings from wherever the user pointed it.
			if path, err := cmd.Flags().GetString("config"); err == nil && path != config.DefaultPath {
				settings, err := config.Load(path)
				if err != nil {
					return err
				}
				c.app.WithSettings(settings)
			}
			return c.app.Run(cmd.Context(), args)
		},
	}
}
