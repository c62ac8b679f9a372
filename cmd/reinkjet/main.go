package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reinkjet/internal/interfaces/cli/migrate"
	"reinkjet/internal/interfaces/cli/server"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	server.Version = version

	rootCmd := &cobra.Command{
		Use:   "reinkjet",
		Short: "Reinkjet customer portal backend",
		Long:  `Backend service for the Reinkjet print outsourcing customer portal: accounts, equipment fleet, support tickets and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
