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

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List users for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []*types.TenantUser
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/tenants/"+args[0]+"/members", nil, &users); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE\tINVITED_BY")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.UserID, u.Email, u.Role, u.InvitedBy)
		}
		w.Flush()
		return nil
	},
}

var inviteUserCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Add an existing account to a tenant",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := tenant.InviteMemberRequest{Email: args[1]}
		if len(args) == 3 {
			req.Role = types.Role(args[2])
		}

		m := new(types.Membership)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/tenants/"+args[0]+"/members", req, m); err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("User invited: %s (Role: %s)\n", args[1], m.Role)
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update [tenant-id] [user-id] [role]",
	Short: "Update user role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := new(types.Membership)
		req := tenant.UpdateMemberRequest{Role: types.Role(args[2])}
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/tenants/"+args[0]+"/members/"+args[1], req, m); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User updated: %s\n", args[1])
		fmt.Printf("New Role: %s\n", m.Role)
		return nil
	},
}

var removeUserCmd = &cobra.Command{
	Use:   "remove [tenant-id] [user-id]",
	Short: "Remove a user from a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, "/tenants/"+args[0]+"/members/"+args[1], nil, nil); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}

		fmt.Printf("User removed: %s\n", args[1])
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(inviteUserCmd)
	usersCmd.AddCommand(updateUserCmd)
	usersCmd.AddCommand(removeUserCmd)
}
