package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyJSON bool

// verifyCmd verifies explicit claims without the extraction phase
var verifyCmd = &cobra.Command{
	Use:   "verify [claim]...",
	Short: "Verify explicit claims without extraction",
	Long: `Skips claim extraction and verifies the given statements directly.
Each argument is treated as one claim.

Examples:
  veritas verify "The Eiffel Tower is 330 meters tall."
  veritas verify "Claim one." "Claim two."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	result, err := client.VerifyClaimList(ctx, args)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verifyJSON {
		return printJSON(result)
	}
	renderVerification(result)
	return nil
}
