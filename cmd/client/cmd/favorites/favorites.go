package favorites

import (
	"github.com/spf13/cobra"
)

// FavoritesCmd is the parent command for the device-local favorite set.
var FavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite countries",
	Long: `Favorites live on this device and work without an account.
When you are signed in, changes are also pushed to the server in the
background.`,
}

func init() {
	FavoritesCmd.AddCommand(ListCmd)
	FavoritesCmd.AddCommand(AddCmd)
	FavoritesCmd.AddCommand(RemoveCmd)
	FavoritesCmd.AddCommand(ToggleCmd)
}
