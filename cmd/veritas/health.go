package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/veritas/cmd/veritas/ui"
)

// healthCmd checks the detection service
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check detection service health",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}

	styles := ui.NewStyles()
	if !status.Healthy() {
		msg := status.Status
		if status.Message != "" {
			msg = fmt.Sprintf("%s: %s", status.Status, status.Message)
		}
		return fmt.Errorf("service degraded: %s", msg)
	}

	fmt.Println(styles.Success.Render("✔"), "service healthy")
	return nil
}
