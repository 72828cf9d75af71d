package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/datareef/reconcile-cli/internal/reconcile"
	"github.com/datareef/reconcile-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	runMetadataFile string
	runCustomerFile string
	runOutput       string
	runTimeoutSec   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch both files, match records, and show the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runMetadataFile == "" || runCustomerFile == "" {
			return fmt.Errorf("both --metadata-file and --customer-file are required")
		}
		output := runOutput
		if output == "" && cfg != nil {
			output = cfg.Output
		}
		if output != "table" && output != "json" {
			return fmt.Errorf("invalid --output: %s (use table or json)", output)
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout())
		defer cancel()

		metadata := fetchInput(ctx, "metadata", runMetadataFile)
		customer := fetchInput(ctx, "customer", runCustomerFile)

		report := reconcile.Run(metadata, customer)

		for _, d := range report.Diagnostics {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", d)
		}
		if output == "json" {
			return render.ReportJSON(os.Stdout, report)
		}
		render.Report(os.Stdout, report)
		return nil
	},
}

// fetchInput retrieves one side's bytes. Retrieval failures are handed to
// the engine rather than aborting the run; the pass degrades to an empty
// table plus a diagnostic.
func fetchInput(ctx context.Context, side, key string) reconcile.Input {
	sc, err := sideConfig(side)
	if err != nil {
		return reconcile.Input{Name: key, FetchErr: err}
	}
	src, err := buildSource(ctx, side, sc)
	if err != nil {
		return reconcile.Input{Name: key, FetchErr: err}
	}
	data, err := src.Fetch(ctx, key)
	if err != nil {
		return reconcile.Input{Name: key, FetchErr: err}
	}
	return reconcile.Input{Name: key, Data: data}
}

func fetchTimeout() time.Duration {
	if runTimeoutSec > 0 {
		return time.Duration(runTimeoutSec) * time.Second
	}
	if cfg != nil && cfg.FetchTimeoutSec > 0 {
		return time.Duration(cfg.FetchTimeoutSec) * time.Second
	}
	return 60 * time.Second
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runMetadataFile, "metadata-file", "", "metadata file name within the metadata source")
	runCmd.Flags().StringVar(&runCustomerFile, "customer-file", "", "customer file name within the customer source")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output format: table or json (default from config)")
	runCmd.Flags().IntVar(&runTimeoutSec, "timeout", 0, "fetch timeout in seconds (overrides config)")
}
