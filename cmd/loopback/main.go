// Command loopback runs the feedback API and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/loopback-backend/internal/app"
	"github.com/heartmarshall/loopback-backend/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		envFile    string
	)

	root := &cobra.Command{
		Use:           "loopback",
		Short:         "Loopback - multi-tenant feedback collection API",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing default .env is fine; an explicit one must exist.
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before configuration")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFrom(configPath)
		}
		return config.Load()
	}

	root.AddCommand(newServeCmd(load))
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newTokenCmd(load))

	return root
}
