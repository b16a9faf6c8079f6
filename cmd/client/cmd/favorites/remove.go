package favorites

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <code>...",
	Short: "Remove countries from favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		for _, code := range args {
			code = strings.ToUpper(code)

			has, err := app.IsFavorite(code)
			if err != nil {
				return err
			}
			if !has {
				fmt.Printf("%s is not a favorite\n", code)
				continue
			}

			if _, err := app.ToggleFavorite(code); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", code)
		}

		return nil
	},
}
