package document

import (
	"fmt"

	"github.com/sitesig/sitesig/pkg/failure"
)

type DocumentErrorCause string

const (
	ErrCauseNotHTML         = "not an HTML document"
	ErrCauseInvalidDocument = "unusable document handle"
	ErrCauseDecodeFailure   = "failed to decode document bytes"
)

// DocumentError is always fatal: without a usable tree no scan is possible,
// so the condition must abort the extraction call rather than travel through
// the None result channel used for "not found".
type DocumentError struct {
	Message string
	Cause   DocumentErrorCause
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document error: %s", e.Cause)
}

func (e *DocumentError) Severity() failure.Severity {
	return failure.SeverityFatal
}
