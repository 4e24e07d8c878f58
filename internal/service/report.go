package service

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/veritas/internal/domain"
)

const reportWidth = 60

// Serialize renders a verification result as a plain-text report. Output is
// deterministic: serializing the same result twice yields byte-identical
// text, so the timestamp comes from the result itself, never the clock.
func Serialize(result *domain.VerificationResult) string {
	if result == nil {
		result = &domain.VerificationResult{}
	}
	view := Aggregate(result)

	var b strings.Builder
	header := strings.Repeat("=", reportWidth)
	rule := strings.Repeat("-", reportWidth)

	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString("HALLUCINATION DETECTION REPORT\n")
	b.WriteString(header)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Generated: %s\n\n", result.Timestamp)

	b.WriteString("SUMMARY\n")
	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Overall Trust Score: %.1f%%\n", view.Summary.TrustScore)
	fmt.Fprintf(&b, "Total Claims Analyzed: %d\n", view.Summary.TotalClaims)
	fmt.Fprintf(&b, "Sources Checked: %d\n", view.Summary.SourcesChecked)
	fmt.Fprintf(&b, "Processing Time: %.2fs\n\n", view.Summary.ProcessingTime)

	b.WriteString("BREAKDOWN\n")
	b.WriteString(rule)
	b.WriteByte('\n')
	for _, status := range domain.AllStatuses() {
		cfg := domain.GetStatusConfig(status)
		fmt.Fprintf(&b, "%s %s: %d\n", cfg.Symbol, cfg.Label, result.Summary.Count(status))
	}
	b.WriteByte('\n')

	b.WriteString("DETAILED FINDINGS\n")
	b.WriteString(rule)
	b.WriteByte('\n')

	for _, f := range view.Findings {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%d. %s [%s] (%.0f%% confidence)\n",
			f.Index, f.Config.Symbol, strings.ToUpper(string(f.Status)), f.Confidence)
		fmt.Fprintf(&b, "   Claim: %s\n", f.Claim)
		if f.Correction != "" {
			fmt.Fprintf(&b, "   Correction: %s\n", f.Correction)
		}
		if len(f.KeyFacts) > 0 {
			fmt.Fprintf(&b, "   Key Facts: %s\n", strings.Join(f.KeyFacts, "; "))
		}
		if len(f.Sources) > 0 {
			b.WriteString("   Sources:\n")
			for _, src := range f.Sources {
				fmt.Fprintf(&b, "     - %s (%s)\n", src.Domain, src.Credibility)
			}
		}
		explanation := f.Explanation
		if explanation == "" {
			explanation = "N/A"
		}
		fmt.Fprintf(&b, "   Explanation: %s\n", explanation)
	}

	return b.String()
}
