package main

import (
	"os"

	"github.com/spf13/cobra"

	"litrevu/internal/interfaces/cli/migrate"
	"litrevu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "litrevu",
		Short: "LITRevu - a literature review community",
		Long:  `LITRevu lets readers request and publish book reviews and follow each other's posts.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
