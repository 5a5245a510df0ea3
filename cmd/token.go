// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/workspace-service/pkg/authentication"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string

	hmacSecret  string
	hmacSubject string
	hmacTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the workspace API",
	Long: `Obtain a bearer token. With --hmac-secret a token for --subject is signed locally,
matching the server hmac authentication mode. Otherwise the OAuth2 client credentials
flow is run against --token-url, or the token endpoint discovered from --issuer-url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := fetchToken(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func fetchToken(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if hmacSecret != "" {
		return authentication.IssueHMACToken(hmacSecret, issuerURL, hmacSubject, hmacTTL)
	}

	if clientID == "" || clientSecret == "" {
		return "", errors.New("--client-id and --client-secret are required without --hmac-secret")
	}

	if tokenURL == "" {
		if issuerURL == "" {
			return "", errors.New("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return "", fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token.AccessToken, nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL, used for OIDC discovery or as the hmac token issuer")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().StringVar(&hmacSecret, "hmac-secret", "", "Shared secret for signing a token locally")
	tokenCmd.Flags().StringVar(&hmacSubject, "subject", "", "Subject of a locally signed token")
	tokenCmd.Flags().DurationVar(&hmacTTL, "ttl", time.Hour, "Lifetime of a locally signed token")
}
