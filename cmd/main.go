package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "hotel-booking",
		Short: "Hotel booking service",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to TOML config")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		grantAdminCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
