package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/veritas/cmd/veritas/ui"
	"github.com/Harshitk-cp/veritas/internal/extract"
	"github.com/Harshitk-cp/veritas/internal/service"
)

// watchCmd watches a directory and analyzes changed documents
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and analyze changed documents",
	Long: `Watches a directory for changes to supported documents (.txt, .md,
.markdown, .html, .htm) and runs the analysis pipeline on each settled
write. Results print as they arrive. Press Ctrl+C to stop.

Example:
  veritas watch ./notes`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	styles := ui.NewStyles()
	analysis := service.NewAnalysisService(client, newConsole(), logger)
	extractor := extract.NewExtractor(logger)

	watcher, err := service.NewWatchService(args[0], analysis, extractor, logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	watcher.OnResult = func(path string, outcome *service.RunOutcome, err error) {
		fmt.Println()
		fmt.Println(styles.Bold.Render(path))
		if err != nil {
			fmt.Println(styles.Error.Render("✖"), err.Error())
			return
		}
		renderOutcome(outcome)
	}

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", args[0])
	<-ctx.Done()
	fmt.Println()
	fmt.Println("Stopping watcher.")
	return nil
}
