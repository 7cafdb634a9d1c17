package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"matchday/internal/cli"
	"matchday/internal/ingest"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load raw source files into staging tables",
		Long: `Load the customer CSV, transaction CSV, and sentiment JSON exports into
append-only staging tables. Values are staged verbatim; cleaning happens in
the transform stage.`,
		RunE: runIngest,
	}

	addSourceFlags(cmd)
	cmd.Flags().String("only", "", "load a single source (customers, transactions, sentiment)")
	return cmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("customers", "", "customers CSV path (overrides config)")
	cmd.Flags().String("transactions", "", "transactions CSV path (overrides config)")
	cmd.Flags().String("sentiment", "", "sentiment JSON path (overrides config)")
}

// applySourceOverrides copies any source-path flags the user set into the
// active configuration so every stage resolves the same paths.
func applySourceOverrides(cmd *cobra.Command) {
	for flag, key := range map[string]string{
		"customers":    "data.customers",
		"transactions": "data.transactions",
		"sentiment":    "data.sentiment",
	} {
		if v, err := cmd.Flags().GetString(flag); err == nil && v != "" {
			viper.Set(key, v)
		}
	}
}

func runIngest(cmd *cobra.Command, _ []string) error {
	applySourceOverrides(cmd)

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if only, _ := cmd.Flags().GetString("only"); only != "" {
		n, err := ingest.New(store).IngestSource(cmd.Context(), only, sourcesFromViper())
		if err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Staged %d %s rows", n, only)))
		return nil
	}

	summary := ingest.New(store).IngestAll(cmd.Context(), sourcesFromViper())

	for source, issues := range summary.Issues {
		for _, issue := range issues {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("%s: %s", source, issue)))
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Staged %d customers, %d transactions, %d sentiment posts",
		summary.RowCounts["customers"],
		summary.RowCounts["transactions"],
		summary.RowCounts["sentiment"],
	)))
	return nil
}
