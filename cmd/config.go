package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/datareef/reconcile-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set reconcile configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		showSource("metadata", cfg.Metadata)
		showSource("customer", cfg.Customer)
		fmt.Printf("output: %s\n", cfg.Output)
		fmt.Printf("fetch_timeout_sec: %d\n", cfg.FetchTimeoutSec)
		return nil
	},
}

func showSource(side string, sc cfgpkg.SourceConfig) {
	fmt.Printf("%s.type: %s\n", side, sc.Type)
	switch sc.Type {
	case "s3":
		fmt.Printf("%s.bucket: %s\n", side, sc.Bucket)
		if sc.Region != "" {
			fmt.Printf("%s.region: %s\n", side, sc.Region)
		}
		if sc.Prefix != "" {
			fmt.Printf("%s.prefix: %s\n", side, sc.Prefix)
		}
		fmt.Printf("%s.access_key_id: %s\n", side, mask(sc.AccessKeyID))
		fmt.Printf("%s.secret_access_key: %s\n", side, mask(sc.SecretAccessKey))
		if sc.SessionToken != "" {
			fmt.Printf("%s.session_token: %s\n", side, mask(sc.SessionToken))
		}
	default:
		fmt.Printf("%s.dir: %s\n", side, sc.Dir)
	}
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := applyConfigKey(cfg, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func applyConfigKey(c *cfgpkg.Global, key, val string) error {
	if side, field, ok := strings.Cut(key, "."); ok {
		var sc *cfgpkg.SourceConfig
		switch side {
		case "metadata":
			sc = &c.Metadata
		case "customer":
			sc = &c.Customer
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		switch field {
		case "type":
			if val != "s3" && val != "local" {
				return fmt.Errorf("invalid %s: %s (use s3 or local)", key, val)
			}
			sc.Type = val
		case "bucket":
			sc.Bucket = val
		case "region":
			sc.Region = val
		case "prefix":
			sc.Prefix = val
		case "access_key_id":
			sc.AccessKeyID = val
		case "secret_access_key":
			sc.SecretAccessKey = val
		case "session_token":
			sc.SessionToken = val
		case "dir":
			sc.Dir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		return nil
	}
	switch key {
	case "output":
		if val != "table" && val != "json" {
			return fmt.Errorf("invalid output: %s (use table or json)", val)
		}
		c.Output = val
	case "fetch_timeout_sec":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return fmt.Errorf("invalid int for fetch_timeout_sec: %v", val)
		}
		c.FetchTimeoutSec = i
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 6 {
		return "******"
	}
	return s[:3] + "****" + s[len(s)-3:]
}
