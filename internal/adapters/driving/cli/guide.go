package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Discover service capabilities",
	Long: `Fetches the service's self-description document and prints the
declared endpoints and usage hints.`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, _ []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	descriptor, err := discoveryService.Discover(cmd.Context())
	if err != nil {
		return fmt.Errorf("discover service: %w", err)
	}

	cmd.Printf("%s %s\n", descriptor.Name, descriptor.Version)

	names := descriptor.EndpointNames()
	cmd.Printf("\nEndpoints (%d):\n", len(names))
	for _, name := range names {
		info := descriptor.Endpoints[name]
		line := "  " + name
		if info.Method != "" || info.URL != "" {
			line += fmt.Sprintf(" (%s %s)", info.Method, info.URL)
		}
		cmd.Println(line)
		if info.Description != "" {
			cmd.Printf("      %s\n", info.Description)
		}
	}

	if len(descriptor.BestPractices) > 0 {
		cmd.Println("\nBest practices:")
		for i, practice := range descriptor.BestPractices {
			cmd.Printf("  %d. %s\n", i+1, practice)
		}
	}
	return nil
}
