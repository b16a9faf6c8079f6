package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"worldexplorer/cmd/client/cmd/auth"
	"worldexplorer/cmd/client/cmd/country"
	"worldexplorer/cmd/client/cmd/favorites"
	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
	"worldexplorer/internal/app/client/config"
	"worldexplorer/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "worldexplorer",
	Short: "WorldExplorer - browse countries and keep favorites",
	Long: `WorldExplorer is a command line client for exploring the world's
countries. Favorites are kept on this device and, once you sign in,
mirrored to your account.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	err := rootCmd.Execute()

	if app != nil {
		// Short-lived process: give any pending favorites push a chance
		// to reach the server before exiting.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		app.Flush(ctx)
		cancel()
		app.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	app.RestoreSession(ctx)
	cancel()

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "WorldExplorer server address")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(country.CountriesCmd)
	rootCmd.AddCommand(favorites.FavoritesCmd)
}
