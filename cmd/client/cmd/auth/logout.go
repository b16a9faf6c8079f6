package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget this device's favorites",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		app.Logout()

		fmt.Println("Signed out.")
		return nil
	},
}
