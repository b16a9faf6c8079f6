package country

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Show one country by its cca3 code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		c, err := app.CountryByCode(ctx, args[0])
		if err != nil {
			return err
		}

		favorite, _ := app.IsFavorite(c.Code)
		return printCountry(c, favorite)
	},
}
