package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchday/internal/cli"
	"matchday/internal/fixtures"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate deterministic messy source fixtures",
		Long: `Write customers.csv, transactions.csv, and sentiment.json into the data
directory: seeded, reproducible, and intentionally messy (mixed date formats,
missing values, duplicate keys, orphan foreign keys).`,
		RunE: runGenerate,
	}

	cmd.Flags().String("dir", "data", "directory to write fixtures into")
	cmd.Flags().Int64("seed", fixtures.DefaultSeed, "random seed")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	seed, _ := cmd.Flags().GetInt64("seed")

	if err := fixtures.New(dir, seed).GenerateAll(); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Fixtures written to " + dir))
	return nil
}
