package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health",
	Long: `Probes the service health endpoint and reports a tri-state signal:
healthy, degraded or unreachable. Degraded means the service answered
but did not report itself healthy - callers may continue with reduced
expectations.`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if dispatcherService == nil {
		return errors.New("dispatcher service not configured")
	}

	report := dispatcherService.HealthCheck(cmd.Context())

	cmd.Printf("state:    %s\n", report.State)
	if report.Status != "" {
		cmd.Printf("status:   %s\n", report.Status)
	}
	if report.Database != "" {
		cmd.Printf("database: %s\n", report.Database)
	}
	if report.Version != "" {
		cmd.Printf("version:  %s\n", report.Version)
	}
	cmd.Printf("elapsed:  %s\n", formatElapsed(report.Elapsed))

	if report.State == domain.HealthUnreachable {
		cmd.PrintErrf("error: %s\n", report.Error)
	}
	return nil
}
