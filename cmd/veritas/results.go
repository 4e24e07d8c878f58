package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resultsClaims bool
	resultsJSON   bool
)

// resultsCmd fetches the service's most recent stored results
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Fetch the service's most recent results",
	Long: `Fetches what the detection service is currently holding: the latest
verification results by default, or the latest extracted claims with
--claims.

Examples:
  veritas results
  veritas results --claims
  veritas results --json`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	if resultsClaims {
		extraction, err := client.FetchExtracted(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch claims: %w", err)
		}
		if resultsJSON {
			return printJSON(extraction)
		}
		renderClaims(extraction)
		return nil
	}

	verification, err := client.FetchVerified(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch results: %w", err)
	}
	if resultsJSON {
		return printJSON(verification)
	}
	renderVerification(verification)
	return nil
}
