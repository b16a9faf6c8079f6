package country

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var SearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search countries by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		countries, err := app.CountriesByName(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		return printCountries(countries, favoriteSet(app))
	},
}
