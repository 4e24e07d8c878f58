package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/export"
	"github.com/Harshitk-cp/veritas/internal/extract"
	"github.com/Harshitk-cp/veritas/internal/notify"
	"github.com/Harshitk-cp/veritas/internal/service"
)

var (
	analyzeFile   string
	analyzeJSON   bool
	analyzeReport bool
)

// analyzeCmd runs the full extract-and-verify pipeline on one input
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text or a document for hallucinations",
	Long: `Runs the two-phase analysis pipeline: extracts factual claims from
the input, verifies each against web sources, and prints a trust score
with a per-claim breakdown.

Examples:
  veritas analyze "The Great Wall of China is visible from the Moon."
  veritas analyze --file article.html
  veritas analyze --file notes.md --report
  veritas analyze --json "Water boils at 100 degrees Celsius."`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFile == "" && len(args) == 0 {
		return fmt.Errorf("provide text to analyze or --file")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	var notifier notify.Notifier = newConsole()
	if analyzeJSON {
		notifier = notify.Silent{}
	}
	analysis := service.NewAnalysisService(client, notifier, logger)

	state := domain.InputState{Mode: domain.InputModeText, Text: strings.Join(args, " ")}
	if analyzeFile != "" {
		extractor := extract.NewExtractor(logger)
		text, err := extractor.FromFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", analyzeFile, err)
		}
		state = domain.InputState{
			Mode:          domain.InputModeFile,
			ExtractedText: text,
			FileName:      filepath.Base(analyzeFile),
		}
	}

	outcome, err := analysis.Analyze(ctx, state)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return printJSON(outcome)
	}
	renderOutcome(outcome)

	if analyzeReport && outcome.Result != nil {
		writer := export.NewWriter(config.ReportDir(), logger)
		path, err := writer.Write(service.Serialize(outcome.Result), export.FileName(time.Now()))
		if err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		fmt.Println()
		fmt.Printf("Report saved to %s\n", path)
	}
	return nil
}

// commandContext derives the run context, cancelled on SIGINT/SIGTERM.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(baseCtx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
