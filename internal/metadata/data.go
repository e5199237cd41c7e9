package metadata

import (
	"time"
)

// ScanEvent captures the outcome of one scanner pass over the document.
type ScanEvent struct {
	component      string
	source         string
	candidateCount int
}

func (s ScanEvent) Component() string {
	return s.component
}

func (s ScanEvent) Source() string {
	return s.source
}

func (s ScanEvent) CandidateCount() int {
	return s.candidateCount
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, metrics, reporting).

	Rules:
	 - ErrorCause is for observability only.
	 - It must never be used to derive retry, continuation, or abort decisions.
	 - Any use of metadata.ErrorCause outside logging, metrics, or reporting is a design violation.
	 - ErrorCause MUST NOT influence control flow.
	 - ErrorCause values MUST have stable, package-agnostic semantics.
	 - Pipeline packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.
	Non-goals:
	 - ErrorCause does not encode severity.
	 - ErrorCause does not imply retryability.
	 - ErrorCause does not imply correctness of downstream behavior.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

Meaning:
  - The failure does not map cleanly to any known category.
  - Used as a safe fallback.

Examples:
  - Unexpected internal errors
  - Unclassified third-party library failures

# CauseNetworkFailure

Meaning:
  - Failure caused by network transport or remote availability.

Examples:
  - TCP timeouts
  - DNS resolution failures
  - Connection resets

# CauseContentInvalid

Meaning:
  - Content was fetched but could not be processed meaningfully.

Examples:
  - Non-HTML responses
  - Empty or unextractable document bodies
  - A document handle with no usable tree

# CauseInlineDecodeFailure

Meaning:
  - A single inline (data-URI) image payload could not be decoded.
  - The owning candidate degrades to text-only scoring; extraction continues.

Examples:
  - Malformed base64 payloads
  - Unreadable or truncated image bytes

# CauseGrammarMatcherFailure

Meaning:
  - The phone-number grammar pass failed internally.
  - The source contributes zero candidates; extraction continues.

Examples:
  - Matcher panics on pathological text
  - Library-internal parse errors
*/
const (
	CauseUnknown = iota
	CauseNetworkFailure
	CauseContentInvalid
	CauseInlineDecodeFailure
	CauseGrammarMatcherFailure
)

type ErrorRecord struct {
	packageName string
	action      string
	cause       ErrorCause
	errorString string
	observedAt  time.Time
	attrs       []Attribute
}

func (e ErrorRecord) PackageName() string {
	return e.packageName
}

func (e ErrorRecord) Cause() ErrorCause {
	return e.cause
}

func (e ErrorRecord) ErrorString() string {
	return e.errorString
}

func (e ErrorRecord) Attrs() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// ArtifactKind identifies the signal class an extraction produced.
type ArtifactKind string

const (
	ArtifactLogo  ArtifactKind = "logo"
	ArtifactPhone ArtifactKind = "phone"
)

type ArtifactRecord struct {
	kind  ArtifactKind
	value string
	attrs []Attribute
}

func (a ArtifactRecord) Kind() ArtifactKind {
	return a.kind
}

func (a ArtifactRecord) Value() string {
	return a.value
}

func (a ArtifactRecord) Attrs() []Attribute {
	out := make([]Attribute, len(a.attrs))
	copy(out, a.attrs)
	return out
}

// FetchRecord captures the outcome of one page fetch, including how many
// retries it took and a checksum of the body it returned.
type FetchRecord struct {
	fetchUrl     string
	httpStatus   int
	duration     time.Duration
	contentType  string
	retryCount   int
	bodyChecksum string
}

func (f FetchRecord) FetchURL() string {
	return f.fetchUrl
}

func (f FetchRecord) HTTPStatus() int {
	return f.httpStatus
}

func (f FetchRecord) RetryCount() int {
	return f.retryCount
}

func (f FetchRecord) BodyChecksum() string {
	return f.bodyChecksum
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrTime       AttributeKey = "time"
	AttrURL        AttributeKey = "url"
	AttrHost       AttributeKey = "host"
	AttrSource     AttributeKey = "source"
	AttrLocator    AttributeKey = "locator"
	AttrMessage    AttributeKey = "message"
	AttrHTTPStatus AttributeKey = "http_status"
)
