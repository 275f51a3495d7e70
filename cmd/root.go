package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "Storefront catalog CLI",
	Long:  "CLI for the vitrine storefront catalog service: catalog validation, cron jobs and custom commands.",
}

// Execute runs the root command after applying registered commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
