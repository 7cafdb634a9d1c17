package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"matchday/internal/cli"
	"matchday/internal/config"
	"matchday/internal/transform"
)

func transformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform",
		Short: "Build the cleaned star schema from staged data",
		Long: `Deduplicate and clean the staging tables into dim_customers,
fact_transactions, fact_sentiment, and customer_profile. Each table loads in
its own transaction; a failing step is reported and the rest still run.`,
		RunE: runTransform,
	}
}

func runTransform(cmd *cobra.Command, _ []string) error {
	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transformer := transform.New(store, config.ValidationFromViper())
	report, err := transformer.TransformAll(cmd.Context())
	if err != nil {
		return err
	}

	for _, step := range report.Steps {
		if strings.HasPrefix(step, "ERROR") {
			fmt.Println(cli.FormatError(step))
		} else {
			fmt.Println(cli.FormatSuccess(step))
		}
	}
	return nil
}
