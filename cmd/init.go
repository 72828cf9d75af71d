package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	cfgpkg "github.com/datareef/reconcile-cli/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			path = filepath.Join(home, ".reconcile", "config.yaml")
		}
		// Refuse to overwrite an existing config.
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat config file: %w", err)
		}
		starter := &cfgpkg.Global{
			Metadata:        cfgpkg.SourceConfig{Type: "local", Dir: "."},
			Customer:        cfgpkg.SourceConfig{Type: "local", Dir: "."},
			Output:          "table",
			FetchTimeoutSec: 60,
		}
		if err := cfgpkg.Save(starter, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Config initialized: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
