package main

import (
	"os"

	"github.com/spf13/cobra"

	"dishpatch/internal/interfaces/cli/migrate"
	"dishpatch/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dishpatch",
		Short: "Dishpatch - dispute resolution for a food delivery marketplace",
		Long:  `Dishpatch runs the issue workflow engine and order lifecycle service with built-in server and migration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
