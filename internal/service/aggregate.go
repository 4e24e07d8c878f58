package service

import "github.com/Harshitk-cp/veritas/internal/domain"

// MaxDisplaySources caps how many sources a finding shows. The first
// entries win; the service already orders sources by relevance.
const MaxDisplaySources = 3

// AnalysisSummary holds the headline metrics derived from a verification
// result. Hallucinations counts false verdicts; Uncertain folds ambiguous
// and unverifiable together.
type AnalysisSummary struct {
	TrustScore     float64 `json:"trust_score"`
	Verified       int     `json:"verified"`
	Hallucinations int     `json:"hallucinations"`
	Uncertain      int     `json:"uncertain"`
	AvgConfidence  float64 `json:"avg_confidence"`
	TotalClaims    int     `json:"total_claims"`
	SourcesChecked int     `json:"sources_checked"`
	ProcessingTime float64 `json:"processing_time"`
}

// ClaimView is the render-ready view of one verdict. Correction is set
// only for false verdicts; Sources is capped to MaxDisplaySources in
// original order.
type ClaimView struct {
	Index       int                  `json:"index"`
	Claim       string               `json:"claim"`
	Status      domain.VerdictStatus `json:"status"`
	Config      domain.StatusConfig  `json:"-"`
	Confidence  float64              `json:"confidence"`
	Correction  string               `json:"correction,omitempty"`
	KeyFacts    []string             `json:"key_facts,omitempty"`
	Sources     []domain.Source      `json:"sources,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
}

type AggregatedView struct {
	Summary  AnalysisSummary `json:"summary"`
	Findings []ClaimView     `json:"findings"`
}

// Aggregate derives summary metrics and a normalized per-claim view from a
// verification result. Aggregation is total: every missing optional field
// has a default and no single malformed record can fail the whole view.
func Aggregate(result *domain.VerificationResult) *AggregatedView {
	if result == nil {
		return &AggregatedView{}
	}

	summary := AnalysisSummary{
		TrustScore:     result.OverallTrustScore,
		Verified:       result.Summary.Verified,
		Hallucinations: result.Summary.False,
		Uncertain:      result.Summary.Ambiguous + result.Summary.Unverifiable,
		TotalClaims:    result.TotalClaims,
		SourcesChecked: result.TotalSourcesChecked,
		ProcessingTime: result.ProcessingTime,
	}
	if summary.TotalClaims == 0 {
		summary.TotalClaims = len(result.Results)
	}

	findings := make([]ClaimView, 0, len(result.Results))
	var confidenceSum float64
	for i, verdict := range result.Results {
		confidenceSum += verdict.ConfidenceScore

		view := ClaimView{
			Index:       i + 1,
			Claim:       verdict.Claim,
			Status:      verdict.Status,
			Config:      domain.GetStatusConfig(verdict.Status),
			Confidence:  verdict.ConfidenceScore,
			KeyFacts:    verdict.KeyFacts,
			Sources:     verdict.Sources,
			Explanation: verdict.Explanation,
		}
		if verdict.Status == domain.StatusFalse {
			view.Correction = verdict.Correction
		}
		if len(view.Sources) > MaxDisplaySources {
			view.Sources = view.Sources[:MaxDisplaySources]
		}
		findings = append(findings, view)
	}

	if len(result.Results) > 0 {
		summary.AvgConfidence = confidenceSum / float64(len(result.Results))
	}

	return &AggregatedView{Summary: summary, Findings: findings}
}
