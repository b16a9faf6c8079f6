package country

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var RegionCmd = &cobra.Command{
	Use:   "region <region>",
	Short: "List countries in a region",
	Long:  `List countries in a region, e.g. Europe, Asia, Africa, Americas, Oceania.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		countries, err := app.CountriesByRegion(ctx, args[0])
		if err != nil {
			return err
		}

		return printCountries(countries, favoriteSet(app))
	},
}
