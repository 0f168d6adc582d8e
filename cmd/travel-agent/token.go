package main

import (
	"fmt"
	"time"

	"travel-agent-service/internal/infrastructure/oauth"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Check the Amadeus credentials by fetching an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cfg.HasFlightCredentials() {
				return fmt.Errorf("AMADEUS_API_KEY and AMADEUS_API_SECRET must be set")
			}

			amadeusOAuth := oauth.NewAmadeusOAuth(cfg.AmadeusAPIKey, cfg.AmadeusAPISecret, cfg.AmadeusBaseURL, log)
			token, err := amadeusOAuth.Token(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Endpoint:     %s\n", cfg.AmadeusBaseURL)
			fmt.Fprintf(out, "Token type:   %s\n", token.Type())
			fmt.Fprintf(out, "Access token: %s\n", maskToken(token.AccessToken))
			if !token.Expiry.IsZero() {
				fmt.Fprintf(out, "Expires in:   %s\n", time.Until(token.Expiry).Round(time.Second))
			}
			return nil
		},
	}
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
