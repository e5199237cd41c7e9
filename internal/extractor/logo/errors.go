package logo

import (
	"fmt"

	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/pkg/failure"
)

type LogoErrorCause string

const (
	// ErrCauseNoImages: zero image elements in the document. Distinct from
	// "no logo selected".
	ErrCauseNoImages = "no image elements"
	// ErrCauseNoCandidates: images present but none yielded a usable
	// candidate.
	ErrCauseNoCandidates = "no usable logo candidates"
)

type LogoError struct {
	Message string
	Cause   LogoErrorCause
}

func (e *LogoError) Error() string {
	return fmt.Sprintf("logo extraction: %s", e.Cause)
}

// Both causes describe absence, not breakage: the call still produced a
// well-formed None result.
func (e *LogoError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

// mapLogoErrorToMetadataCause maps logo-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapLogoErrorToMetadataCause(err *LogoError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNoImages, ErrCauseNoCandidates:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
