package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/phrazzld/coupon-api/internal/platform/postgres"
	"github.com/phrazzld/coupon-api/internal/service/auth"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "couponapi",
		Short: "Coupon catalogue HTTP API",
		Long: `couponapi serves a JSON API for managing discount coupons.

Configuration is read from COUPONAPI_* environment variables, an optional
config.yaml in the working directory and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading configuration")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newHashPasswordCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       fmt.Sprintf("migrate [%s]", strings.Join(postgres.MigrationCommands, "|")),
		Short:     "Apply, roll back or inspect database migrations",
		ValidArgs: postgres.MigrationCommands,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args[0])
		},
	}
}

// newHashPasswordCmd prints bcrypt hashes, which is handy for seeding
// users directly in the database.
func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password PASSWORD...",
		Short: "Print the bcrypt hash of each password",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher := auth.NewBcryptHasher(cost)
			for _, password := range args {
				hash, err := hasher.Hash(password)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost factor")
	return cmd
}

// loadEnvFile populates the environment from a dotenv file. A missing file
// is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
