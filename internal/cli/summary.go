package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"matchday/internal/validate"
)

// RenderQualitySummary renders the quality report as a per-table summary
// suitable for the terminal. The JSON report on disk stays the source of
// truth; this is a human-readable digest.
func RenderQualitySummary(report *validate.Report) string {
	var buf strings.Builder

	buf.WriteString(FormatTitle("Data Quality Summary"))
	buf.WriteString("\n\n")

	if len(report.RawData) > 0 {
		buf.WriteString(BoldStyle.Render("Raw data"))
		buf.WriteString("\n")
		buf.WriteString(renderTableResults(report.RawData))
		buf.WriteString("\n")
	}

	if len(report.TransformedData) > 0 {
		buf.WriteString(BoldStyle.Render("Transformed data"))
		buf.WriteString("\n")
		buf.WriteString(renderTableResults(report.TransformedData))
		buf.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		buf.WriteString(BoldStyle.Render("Issues"))
		buf.WriteString("\n")
		for _, issue := range report.Issues {
			buf.WriteString(FormatWarning(issue))
			buf.WriteString("\n")
		}
	} else {
		buf.WriteString(FormatSuccess("No advisory issues"))
		buf.WriteString("\n")
	}

	return buf.String()
}

func renderTableResults(results map[string]*validate.TableResult) string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Table", "Rows", "Findings"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, name := range names {
		table.Append([]string{name, fmt.Sprintf("%d", results[name].RowCount), describeFindings(results[name])})
	}

	table.Render()
	return buf.String()
}

func describeFindings(result *validate.TableResult) string {
	if result.Error != "" {
		return StyleError("error: " + result.Error)
	}

	var findings []string

	if len(result.HighNullColumns) > 0 {
		cols := make([]string, 0, len(result.HighNullColumns))
		for col := range result.HighNullColumns {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		findings = append(findings, StyleWarning("high nulls: "+strings.Join(cols, ", ")))
	}

	if result.Duplicates != nil && result.Duplicates.Found {
		findings = append(findings, StyleWarning(fmt.Sprintf("%d duplicate keys", result.Duplicates.Count)))
	}

	if result.OrphanKeys != nil && result.OrphanKeys.Found {
		findings = append(findings, StyleWarning(fmt.Sprintf("%d orphan rows", result.OrphanKeys.Count)))
	}

	if result.ReferentialIntegrity != nil {
		if result.ReferentialIntegrity.Valid {
			findings = append(findings, StyleSuccess("FK valid"))
		} else {
			findings = append(findings, StyleError(fmt.Sprintf("%d FK orphans", result.ReferentialIntegrity.OrphanCount)))
		}
	}

	if result.CustomerIDUnique != nil {
		if *result.CustomerIDUnique {
			findings = append(findings, StyleSuccess("keys unique"))
		} else {
			findings = append(findings, StyleError("duplicate keys"))
		}
	}

	if len(findings) == 0 {
		return StyleSuccess("clean")
	}
	return strings.Join(findings, "; ")
}
