package domain

import "context"

// DetectorClient is the contract the pipeline expects from the remote
// hallucination-detection service.
//
// ExtractClaims and VerifyClaims are the two orchestrated phases. Both
// return the decoded body without interpreting its success flag; the
// orchestrator owns that policy (extraction success=false is a valid
// no-claims outcome, not an error). The session token ties the two calls
// together: VerifyClaims consumes the server-side state left by the
// ExtractClaims call that carried the same token and must reject an empty
// token with ErrNoSession before any I/O.
//
// The remaining operations convert success=false into a *ServiceError.
type DetectorClient interface {
	ExtractClaims(ctx context.Context, session, text string) (*ExtractionResult, error)
	VerifyClaims(ctx context.Context, session string) (*VerificationResult, error)
	VerifyClaimList(ctx context.Context, claims []string) (*VerificationResult, error)
	CleanText(ctx context.Context, text string) (*CleanResult, error)
	FetchExtracted(ctx context.Context) (*ExtractionResult, error)
	FetchVerified(ctx context.Context) (*VerificationResult, error)
	Health(ctx context.Context) (*HealthStatus, error)
}
