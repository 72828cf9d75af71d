package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/datareef/reconcile-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile image metadata with customer records",
	Long: `reconcile compares two independently sourced tabular datasets, an image
metadata file and a customer file (CSV, JSON or XML), by inferring a join
key in each and reporting matched and unmatched records.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.reconcile/config.yaml)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
