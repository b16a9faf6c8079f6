package favorites

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite countries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		codes, err := app.Favorites()
		if err != nil {
			return err
		}

		if len(codes) == 0 {
			fmt.Println("No favorites yet. Add one with: worldexplorer favorites add <code>")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "CODE\tNAME\tREGION\t\n")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		for _, code := range codes {
			// Best effort: an unreachable server still lists the codes.
			name, region := "-", "-"
			if c, err := app.CountryByCode(ctx, code); err == nil {
				name, region = c.Name.Common, c.Region
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t\n", code, name, region)
		}

		w.Flush()
		fmt.Printf("\nTotal: %d\n", len(codes))
		return nil
	},
}
