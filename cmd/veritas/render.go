package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/veritas/cmd/veritas/ui"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/Harshitk-cp/veritas/internal/notify"
	"github.com/Harshitk-cp/veritas/internal/service"
)

// console renders pipeline progress notifications on stdout.
type console struct {
	styles ui.Styles
}

func newConsole() *console {
	return &console{styles: ui.NewStyles()}
}

func (c *console) Notify(level notify.Level, message string) {
	switch level {
	case notify.LevelSuccess:
		fmt.Println(c.styles.Success.Render("✔"), message)
	case notify.LevelError:
		fmt.Println(c.styles.Error.Render("✖"), message)
	default:
		fmt.Println(c.styles.Info.Render("→"), message)
	}
}

// renderOutcome prints the result of a completed run. No-claims runs only
// produce notifications, so there is nothing further to show.
func renderOutcome(outcome *service.RunOutcome) {
	if outcome == nil || outcome.Result == nil {
		return
	}
	renderVerification(outcome.Result)
}

// renderVerification prints the styled summary and per-claim findings.
func renderVerification(result *domain.VerificationResult) {
	styles := ui.NewStyles()
	view := service.Aggregate(result)
	summary := view.Summary

	fmt.Println()
	score := fmt.Sprintf("Trust Score: %s", ui.ScoreStyle(summary.TrustScore).Render(fmt.Sprintf("%.1f%%", summary.TrustScore)))
	fmt.Println(styles.Panel.Render(score))
	fmt.Println()

	fmt.Printf("  %s %d\n", styles.Muted.Render("Claims analyzed:"), summary.TotalClaims)
	fmt.Printf("  %s %d\n", styles.Muted.Render("Sources checked:"), summary.SourcesChecked)
	fmt.Printf("  %s %.1f%%\n", styles.Muted.Render("Avg confidence:"), summary.AvgConfidence)
	fmt.Printf("  %s %.2fs\n", styles.Muted.Render("Processing time:"), summary.ProcessingTime)
	fmt.Println()

	for _, status := range domain.AllStatuses() {
		count := result.Summary.Count(status)
		if count == 0 {
			continue
		}
		cfg := domain.GetStatusConfig(status)
		fmt.Printf("  %s %s: %d\n", cfg.Symbol, ui.StatusStyle(cfg.Color).Render(cfg.Label), count)
	}

	if len(view.Findings) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(styles.Title.Render("Findings"))

	for _, finding := range view.Findings {
		fmt.Println()
		status := ui.StatusStyle(finding.Config.Color).Render(strings.ToUpper(string(finding.Status)))
		confidence := styles.Muted.Render(fmt.Sprintf("(%.0f%% confidence)", finding.Confidence))
		fmt.Printf("%2d. %s %s %s\n", finding.Index, finding.Config.Symbol, status, confidence)
		fmt.Printf("    %s\n", finding.Claim)
		if finding.Correction != "" {
			fmt.Printf("    %s %s\n", styles.Warning.Render("Correction:"), finding.Correction)
		}
		if len(finding.KeyFacts) > 0 {
			fmt.Printf("    %s %s\n", styles.Muted.Render("Key facts:"), strings.Join(finding.KeyFacts, "; "))
		}
		for _, src := range finding.Sources {
			fmt.Printf("      %s %s (%s)\n", styles.Muted.Render("-"), src.Domain, src.Credibility)
		}
		if finding.Explanation != "" {
			fmt.Printf("    %s\n", styles.Subtitle.Render(finding.Explanation))
		}
	}
}

// renderClaims prints the numbered claim list from an extraction result.
func renderClaims(result *domain.ExtractionResult) {
	styles := ui.NewStyles()
	if len(result.Claims) == 0 {
		fmt.Println(styles.Muted.Render("No claims extracted yet."))
		return
	}
	fmt.Println(styles.Title.Render(fmt.Sprintf("Extracted Claims (%d)", len(result.Claims))))
	for i, claim := range result.Claims {
		fmt.Printf("%2d. %s\n", i+1, claim)
	}
}

// renderHistory prints recorded runs, newest first.
func renderHistory(records []domain.AnalysisRecord) {
	styles := ui.NewStyles()
	if len(records) == 0 {
		fmt.Println(styles.Muted.Render("No analysis runs recorded yet."))
		return
	}
	fmt.Printf("%-36s  %-19s  %7s  %6s  %5s  %s\n", "ID", "CREATED", "TRUST", "CLAIMS", "FALSE", "SOURCE")
	for _, r := range records {
		trust := ui.ScoreStyle(r.TrustScore).Render(fmt.Sprintf("%6.1f%%", r.TrustScore))
		fmt.Printf("%-36s  %-19s  %s  %6d  %5d  %s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			trust,
			r.TotalClaims,
			r.Hallucinations,
			r.InputSource)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Verify interface compliance at compile time
var _ notify.Notifier = (*console)(nil)
