package repl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// defaultSearchLimit is the page size used for interactive searches.
const defaultSearchLimit = 10

// maxRenderedRows caps how many records a single dispatch prints.
const maxRenderedRows = 10

// renderHealth flattens a health report into transcript lines.
func renderHealth(report domain.HealthReport) dispatchedMsg {
	if report.State == domain.HealthUnreachable {
		return dispatchedMsg{
			lines: []string{fmt.Sprintf("health: unreachable (%s)", report.Error)},
			isErr: true,
		}
	}

	lines := []string{
		fmt.Sprintf("health: %s (%s)", report.State, formatElapsed(report.Elapsed)),
	}
	if report.Database != "" {
		lines = append(lines, "  database: "+report.Database)
	}
	if report.Version != "" {
		lines = append(lines, "  version: "+report.Version)
	}
	return dispatchedMsg{lines: lines}
}

// renderTables lists table names from a tables result.
func renderTables(result domain.Result) dispatchedMsg {
	if !result.Success {
		return failureMsg("tables", result)
	}

	records := result.Records()
	lines := []string{fmt.Sprintf("%d tables (%s)", len(records), formatElapsed(result.Elapsed))}
	for _, record := range records {
		if name, ok := record["name"].(string); ok {
			lines = append(lines, "  "+name)
		}
	}
	return dispatchedMsg{lines: lines}
}

// renderCommand summarizes an administrative statement result.
func renderCommand(result domain.Result) dispatchedMsg {
	if !result.Success {
		return failureMsg("command", result)
	}

	line := fmt.Sprintf("ok (%s)", formatElapsed(result.Elapsed))
	if result.Message != "" {
		line = fmt.Sprintf("%s (%s)", result.Message, formatElapsed(result.Elapsed))
	}
	return dispatchedMsg{lines: []string{line}}
}

// renderQuery prints query rows up to the render cap.
func renderQuery(result domain.Result) dispatchedMsg {
	if !result.Success {
		return failureMsg("select", result)
	}

	records := result.Records()
	rowCount := result.RowCount
	if rowCount == 0 {
		rowCount = len(records)
	}

	lines := []string{fmt.Sprintf("%d rows (%s)", rowCount, formatElapsed(result.Elapsed))}
	shown := records
	if len(shown) > maxRenderedRows {
		shown = shown[:maxRenderedRows]
	}
	for _, record := range shown {
		lines = append(lines, "  "+formatRecord(record))
	}
	if len(records) > maxRenderedRows {
		lines = append(lines, fmt.Sprintf("  ... %d more", len(records)-maxRenderedRows))
	}
	return dispatchedMsg{lines: lines}
}

// renderSearch prints search hits with the shown versus found counts.
func renderSearch(result domain.Result) dispatchedMsg {
	if !result.Success {
		return failureMsg("search", result)
	}

	records := result.Records()
	lines := []string{
		fmt.Sprintf("%d results shown, %d found (%s)",
			len(records), result.TotalFound, formatElapsed(result.Elapsed)),
	}
	for _, record := range records {
		name, _ := record["product_name"].(string)
		if name == "" {
			name, _ = record["name"].(string)
		}
		code, _ := record["product_code"].(string)
		switch {
		case name != "" && code != "":
			lines = append(lines, fmt.Sprintf("  %s (%s)", name, code))
		case name != "":
			lines = append(lines, "  "+name)
		default:
			lines = append(lines, "  "+formatRecord(record))
		}
	}
	return dispatchedMsg{lines: lines}
}

// failureMsg builds the single error line for a failed result.
func failureMsg(what string, result domain.Result) dispatchedMsg {
	return dispatchedMsg{
		lines: []string{fmt.Sprintf("%s failed: %s", what, result.Error)},
		isErr: true,
	}
}

// formatRecord renders one record as key=value pairs.
func formatRecord(record map[string]any) string {
	parts := make([]string, 0, len(record))
	for _, key := range sortedKeys(record) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, record[key]))
	}
	return strings.Join(parts, " ")
}

// sortedKeys returns the record keys in stable order.
func sortedKeys(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// formatElapsed renders a duration in milliseconds.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fms", d.Seconds()*1000)
}
