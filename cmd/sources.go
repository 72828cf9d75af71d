package cmd

import (
	"context"
	"fmt"

	cfgpkg "github.com/datareef/reconcile-cli/internal/config"
	"github.com/datareef/reconcile-cli/internal/source"
)

// buildSource constructs the byte source for one configured side.
func buildSource(ctx context.Context, side string, sc cfgpkg.SourceConfig) (source.Source, error) {
	switch sc.Type {
	case "local", "":
		d, err := source.NewDir(sc.Dir)
		if err != nil {
			return nil, fmt.Errorf("%s source: %w", side, err)
		}
		return d, nil
	case "s3":
		s, err := source.NewS3(ctx, source.S3Options{
			Bucket:          sc.Bucket,
			Region:          sc.Region,
			Prefix:          sc.Prefix,
			AccessKeyID:     sc.AccessKeyID,
			SecretAccessKey: sc.SecretAccessKey,
			SessionToken:    sc.SessionToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%s source: %w", side, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%s source: unknown type %q (use s3 or local)", side, sc.Type)
	}
}

// sideConfig returns the configuration for "metadata" or "customer".
func sideConfig(side string) (cfgpkg.SourceConfig, error) {
	if cfg == nil {
		return cfgpkg.SourceConfig{}, fmt.Errorf("no configuration loaded; run `reconcile init` first")
	}
	switch side {
	case "metadata":
		return cfg.Metadata, nil
	case "customer":
		return cfg.Customer, nil
	default:
		return cfgpkg.SourceConfig{}, fmt.Errorf("unknown side %q (use metadata or customer)", side)
	}
}
