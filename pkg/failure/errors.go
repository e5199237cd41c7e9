package failure

type Severity int

// extraction control flow
const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

// ClassifiedError is the error contract shared by every engine package.
// Recoverable means the failure was contained (a single candidate, a single
// source pass) and the extraction call can still produce a result.
// Fatal means no scan is possible at all, e.g. an unusable document.
type ClassifiedError interface {
	error
	Severity() Severity
}
