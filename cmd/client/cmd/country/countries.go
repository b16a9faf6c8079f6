package country

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"worldexplorer/internal/domain/country"
)

var jsonOutput bool

// CountriesCmd is the parent command for the country catalog.
var CountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Browse the country catalog",
	Long:  `List, search and inspect countries served by the WorldExplorer server.`,
}

func init() {
	CountriesCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON")

	CountriesCmd.AddCommand(ListCmd)
	CountriesCmd.AddCommand(GetCmd)
	CountriesCmd.AddCommand(SearchCmd)
	CountriesCmd.AddCommand(RegionCmd)
}

func printCountries(countries []country.Country, favorites map[string]bool) error {
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(countries)
	}

	if len(countries) == 0 {
		fmt.Println("No countries found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "CODE\tNAME\tREGION\tCAPITAL\tPOPULATION\t\n")

	for _, c := range countries {
		code := c.Code
		if favorites[code] {
			code = "* " + code
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t\n",
			code,
			truncate(c.Name.Common, 32),
			c.Region,
			strings.Join(c.Capital, ", "),
			c.Population,
		)
	}

	w.Flush()
	fmt.Printf("\nTotal: %d (favorites marked with *)\n", len(countries))
	return nil
}

func printCountry(c country.Country, favorite bool) error {
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(c)
	}

	title := c.Name.Common
	if favorite {
		title += " *"
	}
	color.Cyan("%s (%s)", title, c.Code)

	fmt.Printf("Official name: %s\n", c.Name.Official)
	fmt.Printf("Region:        %s", c.Region)
	if c.Subregion != "" {
		fmt.Printf(" / %s", c.Subregion)
	}
	fmt.Println()
	if len(c.Capital) > 0 {
		fmt.Printf("Capital:       %s\n", strings.Join(c.Capital, ", "))
	}
	fmt.Printf("Population:    %d\n", c.Population)
	fmt.Printf("Area:          %.0f km²\n", c.Area)

	if len(c.Languages) > 0 {
		langs := make([]string, 0, len(c.Languages))
		for _, l := range c.Languages {
			langs = append(langs, l)
		}
		fmt.Printf("Languages:     %s\n", strings.Join(langs, ", "))
	}
	if len(c.Currencies) > 0 {
		currencies := make([]string, 0, len(c.Currencies))
		for code, cur := range c.Currencies {
			currencies = append(currencies, fmt.Sprintf("%s (%s)", cur.Name, code))
		}
		fmt.Printf("Currencies:    %s\n", strings.Join(currencies, ", "))
	}
	if len(c.Borders) > 0 {
		fmt.Printf("Borders:       %s\n", strings.Join(c.Borders, ", "))
	}

	return nil
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
