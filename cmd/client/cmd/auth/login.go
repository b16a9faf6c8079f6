package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"worldexplorer/cmd/client/cmd/types"
	"worldexplorer/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to WorldExplorer",
	Long: `Authenticate against the WorldExplorer server.

The session is stored on this device and your favorites are refreshed
from the account.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := app.Login(ctx, email, string(password))
		if err != nil {
			return err
		}

		color.Green("Signed in as %s.", u.Email)
		if len(u.Favorites) > 0 {
			fmt.Printf("Favorites on your account: %d\n", len(u.Favorites))
		}
		return nil
	},
}
