package cmd

import (
	"github.com/spf13/cobra"

	"DocTrackerGo/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and indexes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(false)
		if err != nil {
			return err
		}
		defer closeApp()

		if err := a.migrate(cmd.Context()); err != nil {
			return err
		}
		config.Logger.Infow("migration complete", "driver", a.conf.DBDriver)
		return nil
	},
}
