package detector

import (
	"fmt"
	"time"

	"github.com/Harshitk-cp/veritas/internal/domain"
	"go.uber.org/zap"
)

// Provider constants
const (
	ProviderHTTP = "http"
	ProviderMock = "mock"
)

// Options configures the HTTP detector client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	RPS     float64
	Burst   int
}

// NewClient creates a detector client based on the provider name.
// Returns an error if the provider is unknown or the base URL is empty (except for mock).
func NewClient(provider string, opts Options, logger *zap.Logger) (domain.DetectorClient, error) {
	switch provider {
	case ProviderHTTP:
		if opts.BaseURL == "" {
			return nil, fmt.Errorf("VERITAS_SERVICE_URL is required for http provider")
		}
		return NewHTTPClient(opts, logger), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown detector provider: %s (valid options: http, mock)", provider)
	}
}
