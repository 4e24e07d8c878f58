package domain

// ExtractionResult is the response body of the claim-extraction phase.
// Claims is an ordered list of atomic factual statements pulled from the
// submitted text; order is preserved through verification and reporting.
type ExtractionResult struct {
	Success        bool     `json:"success"`
	Claims         []string `json:"claims"`
	TotalClaims    int      `json:"total_claims,omitempty"`
	CleanedText    string   `json:"cleaned_text,omitempty"`
	ProcessingTime float64  `json:"processing_time,omitempty"`
	ModelUsed      string   `json:"model_used,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// StatusCounts holds the per-status verdict tally. Statuses absent from the
// wire decode to zero, so counts are always safe to read.
type StatusCounts struct {
	Verified      int `json:"verified"`
	False         int `json:"false"`
	PartiallyTrue int `json:"partially_true"`
	Ambiguous     int `json:"ambiguous"`
	Unverifiable  int `json:"unverifiable"`
}

// Count returns the tally for one status, zero for unknown statuses.
func (c StatusCounts) Count(s VerdictStatus) int {
	switch s {
	case StatusVerified:
		return c.Verified
	case StatusFalse:
		return c.False
	case StatusPartiallyTrue:
		return c.PartiallyTrue
	case StatusAmbiguous:
		return c.Ambiguous
	case StatusUnverifiable:
		return c.Unverifiable
	}
	return 0
}

// Total returns the sum of all five status counts.
func (c StatusCounts) Total() int {
	return c.Verified + c.False + c.PartiallyTrue + c.Ambiguous + c.Unverifiable
}

// Source is one cited web source backing a verdict. Credibility is a
// qualitative tier label assigned by the service (e.g. "Very Reliable");
// Score is its numeric counterpart on a 0-100 scale.
type Source struct {
	URL         string  `json:"url"`
	Title       string  `json:"title,omitempty"`
	Domain      string  `json:"domain"`
	Credibility string  `json:"credibility"`
	Score       float64 `json:"score,omitempty"`
}

// ClaimVerdict is the verification outcome for a single claim. Correction
// is only meaningful when Status is StatusFalse. All optional fields decode
// to their zero values when absent.
type ClaimVerdict struct {
	Claim                string        `json:"claim"`
	Status               VerdictStatus `json:"status"`
	ConfidenceScore      float64       `json:"confidence_score"`
	Correction           string        `json:"correction,omitempty"`
	Explanation          string        `json:"explanation,omitempty"`
	KeyFacts             []string      `json:"key_facts,omitempty"`
	Sources              []Source      `json:"sources,omitempty"`
	AmbiguousWords       []string      `json:"ambiguous_words,omitempty"`
	SourcesChecked       int           `json:"sources_checked,omitempty"`
	AvgSourceCredibility float64       `json:"avg_source_credibility,omitempty"`
	ProcessingTime       float64       `json:"processing_time,omitempty"`
}

// VerificationResult is the response body of the verification phase.
// Timestamp is stamped by the service when verification ran, which keeps
// report serialization stable across repeated renders of the same result.
type VerificationResult struct {
	Success             bool           `json:"success"`
	Timestamp           string         `json:"timestamp,omitempty"`
	TotalClaims         int            `json:"total_claims,omitempty"`
	Summary             StatusCounts   `json:"summary"`
	TotalSourcesChecked int            `json:"total_sources_checked"`
	OverallTrustScore   float64        `json:"overall_trust_score"`
	ProcessingTime      float64        `json:"processing_time"`
	Results             []ClaimVerdict `json:"results"`
	Error               string         `json:"error,omitempty"`
}

// CleanResult is the response body of the text-cleaning endpoint.
type CleanResult struct {
	Success        bool   `json:"success"`
	CleanedText    string `json:"cleaned_text"`
	OriginalLength int    `json:"original_length,omitempty"`
	CleanedLength  int    `json:"cleaned_length,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HealthStatus is the response body of the service health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether the service considers itself operational.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy" || h.Status == "ok"
}
