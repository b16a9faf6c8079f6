package favorites

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var AddCmd = &cobra.Command{
	Use:   "add <code>...",
	Short: "Add countries to favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		for _, code := range args {
			code = strings.ToUpper(code)

			has, err := app.IsFavorite(code)
			if err != nil {
				return err
			}
			if has {
				fmt.Printf("%s is already a favorite\n", code)
				continue
			}

			if _, err := app.ToggleFavorite(code); err != nil {
				return err
			}
			color.Green("Added %s", code)
		}

		return nil
	},
}
