// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/providers"
	"github.com/canonical/workspace-service/pkg/vendors"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage model provider credentials and the model catalog",
}

var (
	providerBaseURL string
	includeDisabled bool
	modelCategory   string
)

var listProvidersCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured vendor credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		var creds []*types.CredentialSummary
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/providers", nil, &creds); err != nil {
			return fmt.Errorf("failed to list providers: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "VENDOR\tVALID\tLAST_VALIDATED")
		for _, c := range creds {
			validated := "never"
			if c.LastValidatedAt != nil {
				validated = c.LastValidatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%v\t%s\n", c.Vendor, c.IsValid, validated)
		}
		w.Flush()
		return nil
	},
}

var setProviderCmd = &cobra.Command{
	Use:   "set [vendor] [api-key]",
	Short: "Validate and store a vendor API key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := providers.SaveCredentialRequest{
			Vendor: args[0],
			Config: &vendors.Config{APIKey: args[1], BaseURL: providerBaseURL},
		}

		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/providers", req, nil); err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}

		fmt.Printf("Credential saved: %s\n", args[0])
		return nil
	},
}

var deleteProviderCmd = &cobra.Command{
	Use:   "delete [vendor]",
	Short: "Delete a vendor credential with its models and defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, "/providers/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		fmt.Printf("Credential deleted: %s\n", args[0])
		return nil
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the tenant model catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/providers/models"
		if includeDisabled {
			path = "/providers/catalog?all=true"
		} else if modelCategory != "" {
			path += "?category=" + modelCategory
		}

		var entries []*types.CatalogEntry
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, path, nil, &entries); err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tVENDOR\tMODEL\tCATEGORY\tSOURCE\tENABLED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n", e.ID, e.Vendor, e.ModelID, e.Category, e.Source, e.Enabled)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.AddCommand(listProvidersCmd)
	providersCmd.AddCommand(setProviderCmd)
	providersCmd.AddCommand(deleteProviderCmd)
	providersCmd.AddCommand(modelsCmd)

	setProviderCmd.Flags().StringVar(&providerBaseURL, "base-url", "", "Override the vendor API base URL")
	modelsCmd.Flags().BoolVar(&includeDisabled, "all", false, "Include disabled and retired models")
	modelsCmd.Flags().StringVar(&modelCategory, "category", "", "Filter by model category")
}
