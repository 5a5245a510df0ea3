// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantDescription string

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := new(types.Tenant)
		req := tenant.CreateTenantRequest{Name: args[0], Description: tenantDescription}
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/tenants", req, t); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", t.Name, t.ID)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, "/tenants/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenants []*types.UserTenant
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/tenants", nil, &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tCURRENT\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Role, t.Current, t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var currentTenantCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := new(types.UserTenant)
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/tenants/current", nil, t); err != nil {
			return fmt.Errorf("failed to get current tenant: %w", err)
		}

		fmt.Printf("%s (ID: %s, role: %s)\n", t.Name, t.ID, t.Role)
		return nil
	},
}

var switchTenantCmd = &cobra.Command{
	Use:   "switch [id]",
	Short: "Make a tenant the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/tenants/"+args[0]+"/switch", nil, nil); err != nil {
			return fmt.Errorf("failed to switch tenant: %w", err)
		}

		fmt.Printf("Switched to tenant: %s\n", args[0])
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Rename a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := tenant.TenantPatch{Name: &args[1]}
		if cmd.Flags().Changed("description") {
			patch.Description = &tenantDescription
		}

		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/tenants/"+args[0], patch, nil); err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(currentTenantCmd)
	tenantCmd.AddCommand(switchTenantCmd)
	tenantCmd.AddCommand(updateTenantCmd)

	createTenantCmd.Flags().StringVar(&tenantDescription, "description", "", "Tenant description")
	updateTenantCmd.Flags().StringVar(&tenantDescription, "description", "", "Tenant description")
}
