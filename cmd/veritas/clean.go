package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/veritas/internal/extract"
)

var cleanFile string

// cleanCmd runs text through the service preprocessor
var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Clean text through the service preprocessor",
	Long: `Sends text through the service's cleaning endpoint, which strips
markup and normalizes whitespace, and prints the cleaned text.

Examples:
  veritas clean "Some   messy<br>text"
  veritas clean --file scraped.html`,
	Args: cobra.ArbitraryArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	if cleanFile == "" && len(args) == 0 {
		return fmt.Errorf("provide text to clean or --file")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := newDetector()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if cleanFile != "" {
		extractor := extract.NewExtractor(logger)
		text, err = extractor.FromFile(cleanFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cleanFile, err)
		}
	}

	result, err := client.CleanText(ctx, text)
	if err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	logger.Debug("text cleaned",
		zap.Int("original_length", result.OriginalLength),
		zap.Int("cleaned_length", result.CleanedLength))

	fmt.Println(result.CleanedText)
	return nil
}
