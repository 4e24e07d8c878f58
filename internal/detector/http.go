package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Harshitk-cp/veritas/internal/buildconfig"
	"github.com/Harshitk-cp/veritas/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 120 * time.Second
	defaultRPS     = 10
	defaultBurst   = 5
)

// HTTPClient talks to the detection service over HTTP with JSON bodies.
// Verification operates on server-side state left by extraction, so the two
// phase calls carry the same session token in the X-Session-ID header.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewHTTPClient(opts Options, logger *zap.Logger) *HTTPClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := opts.RPS
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     logger,
	}
}

// request bodies for the detection service
type analyzeRequest struct {
	Text string `json:"text"`
}

type verifyRequest struct {
	Claims []string `json:"claims"`
}

// do issues one JSON round trip. Non-2xx statuses become a *TransportError
// carrying the phase and status code; bodies of failed responses are not
// interpreted.
func (c *HTTPClient) do(ctx context.Context, phase, method, path, session string, reqBody, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limit wait: %w", phase, err)
	}

	var body io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", phase, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", phase, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", buildconfig.UserAgent())

	c.logger.Debug("detector request",
		zap.String("phase", phase),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", phase, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", phase, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.TransportError{Phase: phase, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", phase, err)
	}

	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, phase, path, session string, reqBody, out any) error {
	return c.do(ctx, phase, http.MethodPost, path, session, reqBody, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, phase, path string, out any) error {
	return c.do(ctx, phase, http.MethodGet, path, "", nil, out)
}

// ExtractClaims submits text for claim extraction. The decoded body is
// returned without interpreting its success flag; the caller decides whether
// success=false means failure or an empty outcome.
func (c *HTTPClient) ExtractClaims(ctx context.Context, session, text string) (*domain.ExtractionResult, error) {
	var out domain.ExtractionResult
	if err := c.postJSON(ctx, domain.PhaseExtract, "/api/analyze", session, analyzeRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyClaims verifies the claims extracted earlier in the same session.
// The request body is an empty object; the service resolves the claim set
// from the session state. Like ExtractClaims, the success flag is left to
// the caller.
func (c *HTTPClient) VerifyClaims(ctx context.Context, session string) (*domain.VerificationResult, error) {
	if session == "" {
		return nil, domain.ErrNoSession
	}

	var out domain.VerificationResult
	if err := c.postJSON(ctx, domain.PhaseVerify, "/api/verify", session, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyClaimList verifies an explicit claim list, bypassing extraction.
func (c *HTTPClient) VerifyClaimList(ctx context.Context, claims []string) (*domain.VerificationResult, error) {
	if len(claims) == 0 {
		return nil, domain.ErrNoClaimsToVerify
	}

	var out domain.VerificationResult
	if err := c.postJSON(ctx, domain.PhaseVerify, "/api/verify", "", verifyRequest{Claims: claims}, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &domain.ServiceError{Phase: domain.PhaseVerify, Message: out.Error}
	}
	return &out, nil
}

func (c *HTTPClient) CleanText(ctx context.Context, text string) (*domain.CleanResult, error) {
	var out domain.CleanResult
	if err := c.postJSON(ctx, domain.PhaseClean, "/api/clean-text", "", analyzeRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &domain.ServiceError{Phase: domain.PhaseClean, Message: out.Error}
	}
	return &out, nil
}

func (c *HTTPClient) FetchExtracted(ctx context.Context) (*domain.ExtractionResult, error) {
	var out domain.ExtractionResult
	if err := c.getJSON(ctx, domain.PhaseFetch, "/api/claims", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &domain.ServiceError{Phase: domain.PhaseFetch, Message: out.Error}
	}
	return &out, nil
}

func (c *HTTPClient) FetchVerified(ctx context.Context) (*domain.VerificationResult, error) {
	var out domain.VerificationResult
	if err := c.getJSON(ctx, domain.PhaseFetch, "/api/verified", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &domain.ServiceError{Phase: domain.PhaseFetch, Message: out.Error}
	}
	return &out, nil
}

func (c *HTTPClient) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var out domain.HealthStatus
	if err := c.getJSON(ctx, domain.PhaseHealth, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ domain.DetectorClient = (*HTTPClient)(nil)
