package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

// The administrative hierarchy commands mirror the three chained lookups:
// provinces first, then amphures for one province, then tambons for one
// amphure within that province. Lower levels take the parent identifiers
// exactly as printed by the level above.

var provincesCmd = &cobra.Command{
	Use:   "provinces",
	Short: "List Thai provinces",
	Args:  cobra.NoArgs,
	RunE:  runProvinces,
}

var amphuresCmd = &cobra.Command{
	Use:   "amphures [province-id]",
	Short: "List districts in a province",
	Long: `Lists the amphures (districts) of one province. The province id must
come from a previous 'smlgo provinces' call.`,
	Args: cobra.ExactArgs(1),
	RunE: runAmphures,
}

var tambonsCmd = &cobra.Command{
	Use:   "tambons [amphure-id] [province-id]",
	Short: "List sub-districts in an amphure",
	Long: `Lists the tambons (sub-districts) of one amphure. Amphure ids are only
unique within a province, so both identifiers are required together.`,
	Args: cobra.ExactArgs(2),
	RunE: runTambons,
}

var zipcodeCmd = &cobra.Command{
	Use:   "zipcode [code]",
	Short: "Find locations by postal code",
	Long: `Resolves a postal code to full province/amphure/tambon triples.`,
	Args: cobra.ExactArgs(1),
	RunE: runZipCode,
}

func init() {
	rootCmd.AddCommand(provincesCmd)
	rootCmd.AddCommand(amphuresCmd)
	rootCmd.AddCommand(tambonsCmd)
	rootCmd.AddCommand(zipcodeCmd)
}

func runProvinces(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	result := adminService.ListProvinces(cmd.Context())
	if !result.Success {
		printError(cmd, "provinces", result.Error)
		return nil
	}

	provinces := result.Provinces()
	cmd.Printf("%d provinces\n", len(provinces))
	for _, p := range provinces {
		cmd.Printf("  %3d  %s (%s)\n", p.ID, p.NameTh, p.NameEn)
	}
	return nil
}

func runAmphures(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	provinceID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("province-id must be an integer")
	}

	result := adminService.ListAmphures(cmd.Context(), provinceID)
	if !result.Success {
		printError(cmd, "amphures", result.Error)
		return nil
	}

	amphures := result.Amphures()
	cmd.Printf("%d amphures in province %d\n", len(amphures), provinceID)
	for _, a := range amphures {
		cmd.Printf("  %4d  %s (%s)\n", a.ID, a.NameTh, a.NameEn)
	}
	return nil
}

func runTambons(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	amphureID, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("amphure-id must be an integer")
	}
	provinceID, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.New("province-id must be an integer")
	}

	result := adminService.ListTambons(cmd.Context(), amphureID, provinceID)
	if !result.Success {
		printError(cmd, "tambons", result.Error)
		return nil
	}

	tambons := result.Tambons()
	cmd.Printf("%d tambons in amphure %d, province %d\n", len(tambons), amphureID, provinceID)
	for _, t := range tambons {
		cmd.Printf("  %6d  %s (%s)\n", t.ID, t.NameTh, t.NameEn)
	}
	return nil
}

func runZipCode(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	code, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("code must be an integer")
	}

	result := adminService.FindByZipCode(cmd.Context(), code)
	if !result.Success {
		printError(cmd, "zipcode", result.Error)
		return nil
	}

	locations := result.Locations()
	cmd.Printf("%d locations for zip code %d\n", len(locations), code)
	for _, loc := range locations {
		cmd.Printf("  %s > %s > %s\n",
			loc.Province.NameTh, loc.Amphure.NameTh, loc.Tambon.NameTh)
	}
	return nil
}
