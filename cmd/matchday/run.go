package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"matchday/internal/cli"
	"matchday/internal/config"
	"matchday/internal/ingest"
	"matchday/internal/transform"
	"matchday/internal/validate"
)

// pipelineReport summarizes one end-to-end run, stage by stage.
type pipelineReport struct {
	PipelineRunID string         `json:"pipeline_run_id"`
	Timestamp     time.Time      `json:"timestamp"`
	Stages        map[string]any `json:"stages"`
	Status        string         `json:"status"`
	Error         string         `json:"error,omitempty"`
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: ingest, validate, transform, validate",
		Long: `Execute every stage in order: stage the raw sources, validate them,
build the cleaned star schema, then validate the cleaned tables. Writes
validation_report.json and pipeline_report.json into the output directory.`,
		RunE: runPipeline,
	}

	addSourceFlags(cmd)
	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	applySourceOverrides(cmd)
	ctx := cmd.Context()

	report := &pipelineReport{
		PipelineRunID: newRunID(),
		Timestamp:     time.Now(),
		Stages:        make(map[string]any),
		Status:        "success",
	}

	fmt.Println(cli.FormatTitle("Matchday pipeline " + report.PipelineRunID))

	err := executePipeline(ctx, report)
	if err != nil {
		report.Status = "failed"
		report.Error = err.Error()
	}

	reportPath := filepath.Join(config.OutputDir(), "pipeline_report.json")
	if writeErr := writePipelineReport(report, reportPath); writeErr != nil {
		if err == nil {
			err = writeErr
		}
	}

	if err != nil {
		fmt.Println(cli.FormatError("Pipeline failed: " + err.Error()))
		return err
	}

	fmt.Println(cli.FormatSuccess("Pipeline complete"))
	fmt.Println(cli.FormatInfo("Database: " + config.DatabasePath()))
	fmt.Println(cli.FormatInfo("Reports:  " + filepath.Join(config.OutputDir(), "validation_report.json")))
	fmt.Println(cli.FormatInfo("          " + reportPath))
	return nil
}

func executePipeline(ctx context.Context, report *pipelineReport) error {
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cfg := config.ValidationFromViper()

	// Stage 1: ingestion.
	summary := ingest.New(store).IngestAll(ctx, sourcesFromViper())
	report.Stages["ingestion"] = summary

	// Stage 2: raw validation.
	validator := validate.New(store, cfg)
	report.Stages["raw_validation"] = validator.ValidateRaw(ctx)

	// Stage 3: transformation.
	transformReport, err := transform.New(store, cfg).TransformAll(ctx)
	if err != nil {
		return err
	}
	report.Stages["transformation"] = transformReport

	// Stage 4: transformed validation.
	report.Stages["transformed_validation"] = validator.ValidateTransformed(ctx)
	quality := validator.Report()

	validationPath := filepath.Join(config.OutputDir(), "validation_report.json")
	if err := quality.WriteFile(validationPath); err != nil {
		return err
	}

	fmt.Println(cli.RenderQualitySummary(quality))
	return nil
}

func newRunID() string {
	return fmt.Sprintf("run-%s-%s", time.Now().Format("20060102-150405"), uuid.NewString()[:8])
}

func writePipelineReport(report *pipelineReport, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline report: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write pipeline report: %w", err)
	}
	return nil
}
