package phone

import (
	"fmt"

	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/pkg/failure"
)

type PhoneErrorCause string

const (
	// ErrCauseNoCandidates: all five sources empty after deduplication.
	ErrCauseNoCandidates = "no phone candidates"
)

type PhoneError struct {
	Message string
	Cause   PhoneErrorCause
}

func (e *PhoneError) Error() string {
	return fmt.Sprintf("phone extraction: %s", e.Cause)
}

func (e *PhoneError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

// mapPhoneErrorToMetadataCause maps phone-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapPhoneErrorToMetadataCause(err *PhoneError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNoCandidates:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
