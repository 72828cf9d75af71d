package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listMetadata bool
	listCustomer bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the parseable files of a configured source",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listMetadata == listCustomer { // either both true or both false
			return fmt.Errorf("specify exactly one of --metadata or --customer")
		}
		side := "metadata"
		if listCustomer {
			side = "customer"
		}
		sc, err := sideConfig(side)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout())
		defer cancel()
		src, err := buildSource(ctx, side, sc)
		if err != nil {
			return err
		}
		names, err := src.List(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("(no files available)")
			return nil
		}
		for _, name := range names {
			fmt.Printf("- %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listMetadata, "metadata", false, "list the metadata source")
	listCmd.Flags().BoolVar(&listCustomer, "customer", false, "list the customer source")
}
