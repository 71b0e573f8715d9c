package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Amon Kikuchi's portfolio site and FAQ assistant",
	Long: `Serves the single-page portfolio with its keyword-matching FAQ chat,
and exposes the same assistant on the terminal and over MCP.`,
	SilenceUsage: true,
	// Running the binary with no subcommand serves the site.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
