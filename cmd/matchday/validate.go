package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"matchday/internal/cli"
	"matchday/internal/config"
	"matchday/internal/validate"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run data-quality checks and write the quality report",
		Long: `Profile the staging and cleaned tables: null rates, duplicate keys,
orphan foreign keys, referential integrity, and key uniqueness. Writes
validation_report.json into the output directory.`,
		RunE: runValidate,
	}

	cmd.Flags().Bool("raw-only", false, "validate staging tables only")
	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	rawOnly, _ := cmd.Flags().GetBool("raw-only")

	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	validator := validate.New(store, config.ValidationFromViper())
	validator.ValidateRaw(cmd.Context())
	if !rawOnly {
		validator.ValidateTransformed(cmd.Context())
	}

	report := validator.Report()
	reportPath := filepath.Join(config.OutputDir(), "validation_report.json")
	if err := report.WriteFile(reportPath); err != nil {
		return err
	}

	fmt.Println(cli.RenderQualitySummary(report))
	fmt.Println(cli.FormatInfo("Report written to " + reportPath))
	return nil
}
