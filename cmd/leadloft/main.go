package main

import (
	"os"

	"github.com/spf13/cobra"

	"leadloft/internal/interfaces/cli/migrate"
	"leadloft/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leadloft",
		Short: "LeadLoft - agency CRM API",
		Long:  `LeadLoft is the multi-tenant CRM backend for marketing agencies: pipelines, tracked links and plan-gated features behind one HTTP API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
