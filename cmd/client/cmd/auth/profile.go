package auth

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		u := app.CurrentUser()
		if u == nil {
			return fmt.Errorf("not signed in, run: worldexplorer auth login")
		}

		color.Cyan("%s <%s>", u.Name, u.Email)

		codes, err := app.Favorites()
		if err != nil {
			return err
		}
		if len(codes) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		fmt.Printf("Favorites: %s\n", strings.Join(codes, ", "))

		return nil
	},
}
