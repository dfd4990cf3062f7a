package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/internal/database/postgres"
	"github.com/origem/origem-api/internal/services"
	"github.com/origem/origem-api/migrations"
	"github.com/origem/origem-api/pkg/db"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/storage"
	"github.com/spf13/cobra"
)

const (
	exportTimeout   = 5 * time.Minute
	minSecretLength = 32
)

// configLoader is swapped in tests
type configLoader func() *config.Config

func newRootCmd(load configLoader) *cobra.Command {
	var (
		cfg     *config.Config
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "origemctl",
		Short:         "Operator tooling for the Origem landing API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg = load()
			level := "warn"
			if verbose {
				level = "debug"
			}
			return logger.Initialize(logger.Config{
				Level:       level,
				Environment: "development",
				ServiceName: "origemctl",
			})
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	current := func() *config.Config { return cfg }

	cmd.AddCommand(
		newTokenCmd(current),
		newExportCmd(current),
		newMigrateCmd(current),
	)

	return cmd
}

func newTokenCmd(cfg func() *config.Config) *cobra.Command {
	var (
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the admin listing endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if !c.AdminEnabled() {
				return fmt.Errorf("ADMIN_JWT_SECRET is not set")
			}
			if len(c.Admin.JWTSecret) < minSecretLength {
				return fmt.Errorf("ADMIN_JWT_SECRET must be at least %d characters", minSecretLength)
			}
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}

			tm := jwt.NewTokenManager(c.Admin.JWTSecret, c.Admin.JWTIssuer, c.Admin.TokenTTLHours)
			token, err := tm.GenerateToken(strings.TrimSpace(email), role)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "operator email stored in the token")
	cmd.Flags().StringVar(&role, "role", jwt.RoleAdmin, "role claim")

	return cmd
}

func newExportCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write contacts and newsletter subscribers as CSV to object storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if c.Database.URL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			if err := c.ValidateExport(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), exportTimeout)
			defer cancel()

			uploader, err := storage.NewClient(storage.Options{
				AccessKeyID:     c.Export.AccessKeyID,
				SecretAccessKey: c.Export.SecretAccessKey,
				Bucket:          c.Export.Bucket,
				Endpoint:        c.Export.Endpoint,
				Region:          c.Export.Region,
			})
			if err != nil {
				return err
			}

			pool, err := db.NewPool(ctx, db.PoolConfig{URL: c.Database.URL, MaxConns: 2})
			if err != nil {
				return err
			}
			defer db.Close(pool)

			store := postgres.NewClient(pool)
			result, err := services.NewExportService(store, store, uploader, c.Export.Prefix).Export(ctx, time.Now())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func newMigrateCmd(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			if c.Database.URL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			if err := db.RunMigrations(c.Database.URL, migrations.FS); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			c := cfg()
			if c.Database.URL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			if err := db.RollbackMigrations(c.Database.URL, migrations.FS, steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}
