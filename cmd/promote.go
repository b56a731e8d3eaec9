package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"DocTrackerGo/services"
)

var (
	promoteEmail  string
	promoteRevoke bool
)

var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Grant or revoke admin rights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(false)
		if err != nil {
			return err
		}
		defer closeApp()

		user, err := services.NewUserService(a.users).SetAdmin(cmd.Context(), promoteEmail, !promoteRevoke)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s admin=%t\n", user.Email, user.IsAdmin)
		return nil
	},
}

func init() {
	promoteCmd.Flags().StringVar(&promoteEmail, "email", "", "Email of the account")
	promoteCmd.Flags().BoolVar(&promoteRevoke, "revoke", false, "Remove admin rights instead")
	_ = promoteCmd.MarkFlagRequired("email")
}
