// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	userID       string
	accessToken  string
	httpEndpoint string
	tenantHeader string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Workspace Service",
	Long:  `Workspace Service CLI for managing workspaces, members and model providers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity ID sent in the gateway header when authentication is disabled")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "Bearer access token")
	rootCmd.PersistentFlags().StringVar(&tenantHeader, "tenant", "", "Tenant ID for provider commands, defaults to the current tenant")
}
