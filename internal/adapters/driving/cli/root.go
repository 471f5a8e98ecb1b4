// Package cli provides the cobra command surface for smlgo.
//
// Commands hold no business logic: they parse arguments, call the driving
// ports and print results. Services are wired in once at startup (or
// injected by tests via SetServices).
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smlsoft/smlgo-cli/internal/adapters/driven/config/file"
	"github.com/smlsoft/smlgo-cli/internal/adapters/driven/smlgo"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driving"
	"github.com/smlsoft/smlgo-cli/internal/core/services"
	"github.com/smlsoft/smlgo-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired in initServices, or injected by
// tests and embedders via SetServices.
var (
	gateway           driven.APIGateway
	discoveryService  driving.DiscoveryService
	dispatcherService driving.DispatcherService
	adminService      driving.AdminService
)

// Persistent flag values.
var (
	flagVerbose bool
	flagBaseURL string
	flagTimeout time.Duration
	flagRate    float64
)

var rootCmd = &cobra.Command{
	Use:   "smlgo",
	Short: "Client for the SMLGO data service",
	Long: `smlgo talks to an SMLGO data service: it discovers the service's
capabilities at runtime, executes SQL commands and queries, searches
products, and walks the Thai administrative hierarchy
(province -> amphure -> tambon).

Run 'smlgo interactive' for a command loop or 'smlgo demo' for a
scripted walkthrough.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(flagVerbose)
		initServices()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if gateway != nil {
			_ = gateway.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "",
		"service base URL (default from config, else "+smlgo.DefaultBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0,
		"per-request timeout (default from config, else 30s)")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", 0,
		"client-side rate limit in requests per second (0 disables)")
}

// SetServices injects service implementations, replacing the defaults.
// Pass nil for any service to leave it unset.
func SetServices(
	gw driven.APIGateway,
	discovery driving.DiscoveryService,
	dispatcher driving.DispatcherService,
	admin driving.AdminService,
) {
	gateway = gw
	discoveryService = discovery
	dispatcherService = dispatcher
	adminService = admin
}

// initServices builds the default gateway and services from flags and the
// config file. Already-injected services are left alone.
func initServices() {
	if gateway != nil {
		return
	}

	cfg := smlgo.Config{
		BaseURL:           flagBaseURL,
		Timeout:           flagTimeout,
		RequestsPerSecond: flagRate,
	}

	// Flags take precedence over the config file.
	if store, err := file.NewConfigStore(""); err == nil {
		if cfg.BaseURL == "" {
			cfg.BaseURL = store.GetString("service.base_url")
		}
		if cfg.Timeout == 0 {
			if secs := store.GetInt("service.timeout_seconds"); secs > 0 {
				cfg.Timeout = time.Duration(secs) * time.Second
			}
		}
		if cfg.RequestsPerSecond == 0 {
			cfg.RequestsPerSecond = store.GetFloat("service.requests_per_second")
		}
	} else {
		logger.Warn("config store unavailable: %v", err)
	}

	client := smlgo.NewClient(cfg)
	gateway = client
	discoveryService = services.NewDiscoveryService(gateway)
	dispatcherService = services.NewDispatcherService(gateway)
	adminService = services.NewAdminService(gateway)

	logger.Debug("gateway configured for %s", client.BaseURL())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// printError reports a failed result on the command's error stream.
func printError(cmd *cobra.Command, what, message string) {
	cmd.PrintErrf("%s failed: %s\n", what, message)
}

// formatElapsed renders a duration for result summaries.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
