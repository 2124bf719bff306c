package main

import (
	"os"

	"github.com/spf13/cobra"

	"leafsmp/internal/interfaces/cli/hashpassword"
	"leafsmp/internal/interfaces/cli/migrate"
	"leafsmp/internal/interfaces/cli/server"
)

// @title LeafSMP API
// @version 1.0
// @description Support tickets, staff chat, store ranks and Minecraft server status for the LeafSMP website.
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	rootCmd := &cobra.Command{
		Use:   "leafsmp",
		Short: "LeafSMP community site backend",
		Long:  `LeafSMP serves the support ticket, staff chat and Minecraft server status APIs for the LeafSMP website.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		hashpassword.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
