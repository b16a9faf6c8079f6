package favorites

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle <code>",
	Short: "Flip a country in or out of favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		code := strings.ToUpper(args[0])
		added, err := app.ToggleFavorite(code)
		if err != nil {
			return err
		}

		if added {
			color.Green("Added %s", code)
		} else {
			fmt.Printf("Removed %s\n", code)
		}
		return nil
	},
}
