// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/migrations"
)

const noVersion int64 = -1

var migrateCommands = []string{"up", "down", "status", "check"}

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|check] [version]",
	Short: "Run database migrations",
	Long: `Apply or inspect the embedded schema migrations.

up and down accept an optional target version. Without one, up applies every
pending migration and down rolls back the latest. The DSN defaults to the DSN
environment variable.`,
	Args: validateMigrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command, version := parseMigrateArgs(args)

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		if dsn == "" {
			return errors.New("no DSN given, set --dsn or DSN")
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown output format %q", format)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return migrate(ctx, cmd.OutOrStdout(), dsn, command, format, version)
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	if !slices.Contains(migrateCommands, args[0]) {
		return fmt.Errorf("invalid migrate command %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "up" && args[0] != "down" {
			return fmt.Errorf("%s does not take a version", args[0])
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number %q", args[1])
		}
	}

	return nil
}

func parseMigrateArgs(args []string) (string, int64) {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := noVersion
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	return command, version
}

func migrate(ctx context.Context, out io.Writer, dsn, command, format string, version int64) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := migrateUp(ctx, provider, version)
		if err != nil {
			return err
		}
		return writeResults(out, format, results)
	case "down":
		results, err := migrateDown(ctx, provider, version)
		if err != nil {
			return err
		}
		return writeResults(out, format, results)
	case "status":
		return writeStatus(ctx, out, provider, format)
	case "check":
		return checkPending(ctx, out, provider, format)
	}

	return fmt.Errorf("invalid migrate command %q", command)
}

func migrateUp(ctx context.Context, provider *goose.Provider, version int64) ([]*goose.MigrationResult, error) {
	if version == noVersion {
		return provider.Up(ctx)
	}

	return provider.UpTo(ctx, version)
}

func migrateDown(ctx context.Context, provider *goose.Provider, version int64) ([]*goose.MigrationResult, error) {
	if version != noVersion {
		return provider.DownTo(ctx, version)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return nil, err
	}

	return []*goose.MigrationResult{result}, nil
}

func writeResults(out io.Writer, format string, results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No migrations to apply")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-4s %-40s %v\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}

	return nil
}

func writeStatus(ctx context.Context, out io.Writer, provider *goose.Provider, format string) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintf(out, "%-25s %s\n", "Applied At", "Migration")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-25s %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

// checkPending fails when migrations are pending so it can gate deployments.
func checkPending(ctx context.Context, out io.Writer, provider *goose.Provider, format string) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}

	status := "ok"
	if pending {
		status = "pending"
	}

	if format == "json" {
		if err := json.NewEncoder(out).Encode(map[string]any{"status": status, "version": current}); err != nil {
			return err
		}
	}

	if pending {
		return fmt.Errorf("migrations are pending: database at version %d", current)
	}

	if format == "text" {
		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	}

	return nil
}
