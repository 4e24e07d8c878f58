package detector

import (
	"context"

	"github.com/Harshitk-cp/veritas/internal/domain"
)

// MockClient is a configurable detector client for testing and offline demos.
// Set the response fields to control what each method returns. The canned
// defaults form a coherent three-claim run so the full pipeline works
// without a live detection service.
type MockClient struct {
	ExtractResponse        *domain.ExtractionResult
	ExtractError           error
	VerifyResponse         *domain.VerificationResult
	VerifyError            error
	VerifyListResponse     *domain.VerificationResult
	VerifyListError        error
	CleanResponse          *domain.CleanResult
	CleanError             error
	FetchExtractedResponse *domain.ExtractionResult
	FetchExtractedError    error
	FetchVerifiedResponse  *domain.VerificationResult
	FetchVerifiedError     error
	HealthResponse         *domain.HealthStatus
	HealthError            error

	// Call tracking for assertions
	ExtractCalls        []struct{ Session, Text string }
	VerifyCalls         []string
	VerifyListCalls     [][]string
	CleanCalls          []string
	FetchExtractedCalls int
	FetchVerifiedCalls  int
	HealthCalls         int
}

func NewMockClient() *MockClient {
	c := &MockClient{}
	c.Reset()
	return c
}

func (c *MockClient) ExtractClaims(ctx context.Context, session, text string) (*domain.ExtractionResult, error) {
	c.ExtractCalls = append(c.ExtractCalls, struct{ Session, Text string }{session, text})
	if c.ExtractError != nil {
		return nil, c.ExtractError
	}
	return c.ExtractResponse, nil
}

func (c *MockClient) VerifyClaims(ctx context.Context, session string) (*domain.VerificationResult, error) {
	if session == "" {
		return nil, domain.ErrNoSession
	}
	c.VerifyCalls = append(c.VerifyCalls, session)
	if c.VerifyError != nil {
		return nil, c.VerifyError
	}
	return c.VerifyResponse, nil
}

func (c *MockClient) VerifyClaimList(ctx context.Context, claims []string) (*domain.VerificationResult, error) {
	if len(claims) == 0 {
		return nil, domain.ErrNoClaimsToVerify
	}
	c.VerifyListCalls = append(c.VerifyListCalls, claims)
	if c.VerifyListError != nil {
		return nil, c.VerifyListError
	}
	return c.VerifyListResponse, nil
}

func (c *MockClient) CleanText(ctx context.Context, text string) (*domain.CleanResult, error) {
	c.CleanCalls = append(c.CleanCalls, text)
	if c.CleanError != nil {
		return nil, c.CleanError
	}
	return c.CleanResponse, nil
}

func (c *MockClient) FetchExtracted(ctx context.Context) (*domain.ExtractionResult, error) {
	c.FetchExtractedCalls++
	if c.FetchExtractedError != nil {
		return nil, c.FetchExtractedError
	}
	return c.FetchExtractedResponse, nil
}

func (c *MockClient) FetchVerified(ctx context.Context) (*domain.VerificationResult, error) {
	c.FetchVerifiedCalls++
	if c.FetchVerifiedError != nil {
		return nil, c.FetchVerifiedError
	}
	return c.FetchVerifiedResponse, nil
}

func (c *MockClient) Health(ctx context.Context) (*domain.HealthStatus, error) {
	c.HealthCalls++
	if c.HealthError != nil {
		return nil, c.HealthError
	}
	return c.HealthResponse, nil
}

// Reset clears all recorded calls and resets responses to defaults.
func (c *MockClient) Reset() {
	claims := []string{
		"The Eiffel Tower is 330 meters tall.",
		"The Great Wall of China is visible from the Moon.",
		"Water boils at 100 degrees Celsius at sea level.",
	}
	c.ExtractResponse = &domain.ExtractionResult{
		Success:        true,
		Claims:         claims,
		TotalClaims:    len(claims),
		ProcessingTime: 1.42,
		ModelUsed:      "mock",
	}
	c.ExtractError = nil
	c.VerifyResponse = mockVerification(claims)
	c.VerifyError = nil
	c.VerifyListResponse = mockVerification(claims)
	c.VerifyListError = nil
	c.CleanResponse = &domain.CleanResult{
		Success:        true,
		CleanedText:    "Mock cleaned text.",
		OriginalLength: 24,
		CleanedLength:  18,
	}
	c.CleanError = nil
	c.FetchExtractedResponse = c.ExtractResponse
	c.FetchExtractedError = nil
	c.FetchVerifiedResponse = c.VerifyResponse
	c.FetchVerifiedError = nil
	c.HealthResponse = &domain.HealthStatus{Status: "healthy", Message: "mock detector"}
	c.HealthError = nil
	c.ExtractCalls = nil
	c.VerifyCalls = nil
	c.VerifyListCalls = nil
	c.CleanCalls = nil
	c.FetchExtractedCalls = 0
	c.FetchVerifiedCalls = 0
	c.HealthCalls = 0
}

func mockVerification(claims []string) *domain.VerificationResult {
	results := []domain.ClaimVerdict{
		{
			Claim:           claims[0],
			Status:          domain.StatusVerified,
			ConfidenceScore: 95,
			Explanation:     "Height confirmed by multiple engineering references.",
			KeyFacts:        []string{"Tip height 330 m including antennas", "Completed in 1889"},
			Sources: []domain.Source{
				{URL: "https://en.wikipedia.org/wiki/Eiffel_Tower", Title: "Eiffel Tower", Domain: "en.wikipedia.org", Credibility: "Very Reliable", Score: 85},
				{URL: "https://www.toureiffel.paris/en", Title: "Official site", Domain: "toureiffel.paris", Credibility: "Highly Authoritative", Score: 100},
			},
			SourcesChecked:       2,
			AvgSourceCredibility: 92.5,
			ProcessingTime:       2.1,
		},
		{
			Claim:           claims[1],
			Status:          domain.StatusFalse,
			ConfidenceScore: 90,
			Correction:      "The Great Wall is not visible from the Moon with the naked eye.",
			Explanation:     "Astronaut accounts and optics calculations contradict the claim.",
			KeyFacts:        []string{"Apollo crews reported no man-made structures visible"},
			Sources: []domain.Source{
				{URL: "https://www.nasa.gov/vision/space/workinginspace/great_wall.html", Title: "NASA on the Great Wall", Domain: "nasa.gov", Credibility: "Highly Authoritative", Score: 100},
			},
			SourcesChecked:       1,
			AvgSourceCredibility: 100,
			ProcessingTime:       1.8,
		},
		{
			Claim:           claims[2],
			Status:          domain.StatusVerified,
			ConfidenceScore: 98,
			Explanation:     "Standard atmospheric boiling point, well documented.",
			Sources: []domain.Source{
				{URL: "https://www.britannica.com/science/boiling-point", Title: "Boiling point", Domain: "britannica.com", Credibility: "Very Reliable", Score: 85},
			},
			SourcesChecked:       1,
			AvgSourceCredibility: 85,
			ProcessingTime:       1.5,
		},
	}

	return &domain.VerificationResult{
		Success:             true,
		Timestamp:           "2025-06-01T12:00:00",
		TotalClaims:         len(claims),
		Summary:             domain.StatusCounts{Verified: 2, False: 1},
		TotalSourcesChecked: 4,
		OverallTrustScore:   66.7,
		ProcessingTime:      5.4,
		Results:             results,
	}
}

var _ domain.DetectorClient = (*MockClient)(nil)
