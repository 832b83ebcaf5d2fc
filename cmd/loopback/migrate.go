package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/loopback-backend/migrations"
)

const migrateTimeout = 5 * time.Minute

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
		Long: `Apply or inspect the embedded database migrations.

The connection string is taken from --dsn or DATABASE_DSN. Migrations do
not need the rest of the service configuration.

Examples:
  loopback migrate up
  loopback migrate status --dsn postgres://localhost:5432/loopback
  loopback migrate down`,
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default $DATABASE_DSN)")

	run := func(fn func(ctx context.Context, p *goose.Provider) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_DSN")
			}
			if dsn == "" {
				return fmt.Errorf("migrate: --dsn or DATABASE_DSN is required")
			}

			db, err := sql.Open("pgx", dsn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			provider, err := migrations.NewProvider(db)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()
			return fn(ctx, provider)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, p *goose.Provider) error {
			results, err := p.Up(ctx)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			for _, r := range results {
				fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
			}
			if len(results) == 0 {
				fmt.Println("no pending migrations")
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, p *goose.Provider) error {
			r, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			fmt.Printf("rolled back %s\n", r.Source.Path)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, p *goose.Provider) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = "applied " + s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Printf("%-40s %s\n", s.Source.Path, applied)
			}
			return nil
		}),
	})

	return cmd
}
