package domain

import (
	"errors"
	"fmt"
)

// Phase names used in error messages for the two orchestrated calls.
const (
	PhaseExtract = "extract"
	PhaseVerify  = "verify"
	PhaseClean   = "clean"
	PhaseFetch   = "fetch"
	PhaseHealth  = "health"
)

var (
	// ErrNoSession rejects a verification call issued without the session
	// token returned by the extraction phase. Verification operates on
	// server-side state left by extraction, so the dependency is enforced
	// before any network I/O happens.
	ErrNoSession = errors.New("no extraction session: extract claims first")

	// ErrNoClaimsToVerify rejects an explicit verification request with an
	// empty claim list.
	ErrNoClaimsToVerify = errors.New("no claims to verify")
)

// TransportError reports a non-2xx HTTP status from the analysis service.
type TransportError struct {
	Phase      string
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: status %d", e.Phase, e.StatusCode)
}

// ServiceError reports a 2xx response whose body carries success=false.
// Unlike TransportError the request reached the service; the service itself
// declined or failed the operation.
type ServiceError struct {
	Phase   string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed: service reported an error", e.Phase)
	}
	return e.Message
}
