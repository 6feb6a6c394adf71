// Package cmd implements the CLI commands for the secondspark server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "secondspark",
	Short: "Marketplace listing backend for second-hand sellers",
	Long: "An API-first service that tracks organizations, users, items, and sales,\n" +
		"and pushes item listings to eBay and Etsy on demand.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
