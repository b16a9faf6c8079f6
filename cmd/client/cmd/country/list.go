package country

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all countries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		countries, err := app.Countries(ctx)
		if err != nil {
			return err
		}

		return printCountries(countries, favoriteSet(app))
	},
}

// favoriteSet reads the local favorites for marking listings. A store
// failure just means nothing gets marked.
func favoriteSet(app *client.App) map[string]bool {
	codes, err := app.Favorites()
	if err != nil {
		return nil
	}

	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}
