package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshitk-cp/veritas/internal/config"
	"github.com/Harshitk-cp/veritas/internal/detector"
	"github.com/Harshitk-cp/veritas/internal/domain"
)

var (
	// Global flags
	verbose    bool
	serviceURL string
	provider   string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "veritas",
	Short: "veritas - hallucination detection for text and documents",
	Long: `veritas analyzes text against a claim-verification service.

Each analysis runs in two phases: claims are extracted from the input,
then verified against web sources. The result is a trust score plus a
per-claim breakdown with corrections and citations.

Examples:
  veritas analyze "The Eiffel Tower is 330 meters tall."
  veritas analyze --file article.html --report
  veritas watch ./notes
  veritas history --limit 10`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize logger. Commands print styled output on stdout, so
		// logging stays on stderr and quiet unless -v is set.
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newDetector builds the detection-service client from flags, falling back
// to the environment config for anything not set on the command line.
func newDetector() (domain.DetectorClient, error) {
	prov := provider
	if prov == "" {
		prov = config.DetectorProvider()
	}
	opts := detector.Options{
		BaseURL: serviceURL,
		Timeout: timeout,
	}
	if opts.BaseURL == "" {
		opts.BaseURL = config.ServiceURL()
	}
	if opts.Timeout == 0 {
		opts.Timeout = config.RequestTimeout()
	}

	client, err := detector.NewClient(prov, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create detector client: %w", err)
	}
	return client, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", "", "Detection service base URL (or set VERITAS_SERVICE_URL)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Detector provider: http or mock (or set DETECTOR_PROVIDER)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (or set REQUEST_TIMEOUT_SECONDS)")

	// Analyze flags
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Analyze a document instead of inline text")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeReport, "report", false, "Export the plain-text report to the report directory")

	// Clean flags
	cleanCmd.Flags().StringVarP(&cleanFile, "file", "f", "", "Clean a document instead of inline text")

	// Results flags
	resultsCmd.Flags().BoolVar(&resultsClaims, "claims", false, "Show the last extracted claims instead of verification results")
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "Print the raw result as JSON")

	// Verify flags
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Print the raw result as JSON")

	// History flags
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Number of runs to list (default 20, max 100)")
	historyCmd.Flags().IntVar(&historyPruneDays, "prune-days", 0, "Delete runs older than this many days")

	// Add commands to root
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
