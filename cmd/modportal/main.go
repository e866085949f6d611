package main

import (
	"os"

	"github.com/spf13/cobra"

	"modportal/internal/interfaces/cli/migrate"
	"modportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modportal",
		Short: "Modportal - modernization ticket portal",
		Long:  `Modportal is the engineering modernization ticket portal, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
