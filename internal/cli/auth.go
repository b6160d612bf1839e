package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate against the Last.fm web service",
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Request a token and print the approval URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := client.Auth.GetToken(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("token:", token)
		fmt.Println("authorize at:", client.AuthURL(token))
		fmt.Println("then run: lastfm auth session", token)
		return nil
	},
}

var authSessionCmd = &cobra.Command{
	Use:   "session TOKEN",
	Short: "Exchange an approved token for a session key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := client.Auth.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println("user:", session.Name)
		fmt.Println("session key:", session.Key)
		fmt.Println("add it to your config as: session = \"" + session.Key + "\"")
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a session from the configured username and password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.CanAuthenticate() {
			return fmt.Errorf("username and password are not configured")
		}
		session, err := client.Auth.GetMobileSession(cmd.Context(), cfg.Username, cfg.PasswordHash)
		if err != nil {
			return err
		}
		fmt.Println("user:", session.Name)
		fmt.Println("session key:", session.Key)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authTokenCmd, authSessionCmd, authLoginCmd)
	rootCmd.AddCommand(authCmd)
}
