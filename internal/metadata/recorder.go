package metadata

import (
	"sync"
	"time"
)

/*
Metadata Collected
- Scanner pass candidate counts
- Contained per-candidate failures
- Fetch status and timing
- Produced artifacts (selected logo, phone set)

Logging Goals
- Debuggable extraction behavior
- Failure diagnostics for contained errors that never surface as results

Determinism guarantees:
 - Metadata does not affect control flow
 - Scoring and selection are unchanged by what is recorded
 - Output is stable given identical inputs

Metadata is write-only.
No component may read metadata to influence extraction decisions.
*/

/*
Recorder captures structured extraction events in memory.
It must not:
- perform I/O decisions
- affect control flow
- impose a logging backend
Ordering guarantees:
- Events are recorded synchronously in the order they are received.
- Ordering is provided for debuggability, not causality.
*/
type Recorder struct {
	mu        sync.Mutex
	errors    []ErrorRecord
	scans     []ScanEvent
	fetches   []FetchRecord
	artifacts []ArtifactRecord
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, ErrorRecord{
		packageName: packageName,
		action:      action,
		cause:       cause,
		errorString: errorString,
		observedAt:  observedAt,
		attrs:       attrs,
	})
}

func (r *Recorder) RecordScan(component string, source string, candidateCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans = append(r.scans, ScanEvent{
		component:      component,
		source:         source,
		candidateCount: candidateCount,
	})
}

func (r *Recorder) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentType string,
	retryCount int,
	bodyChecksum string,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, FetchRecord{
		fetchUrl:     fetchUrl,
		httpStatus:   httpStatus,
		duration:     duration,
		contentType:  contentType,
		retryCount:   retryCount,
		bodyChecksum: bodyChecksum,
	})
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, value string, attrs []Attribute) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artifacts = append(r.artifacts, ArtifactRecord{
		kind:  kind,
		value: value,
		attrs: attrs,
	})
}

// Errors returns a copy of the recorded error events.
// For diagnostics and tests only; engine components never read these.
func (r *Recorder) Errors() []ErrorRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ErrorRecord, len(r.errors))
	copy(out, r.errors)
	return out
}

// Scans returns a copy of the recorded scan events.
func (r *Recorder) Scans() []ScanEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ScanEvent, len(r.scans))
	copy(out, r.scans)
	return out
}

// Fetches returns a copy of the recorded fetch events.
func (r *Recorder) Fetches() []FetchRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FetchRecord, len(r.fetches))
	copy(out, r.fetches)
	return out
}

// Artifacts returns a copy of the recorded artifact events.
func (r *Recorder) Artifacts() []ArtifactRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ArtifactRecord, len(r.artifacts))
	copy(out, r.artifacts)
	return out
}

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)

	RecordScan(component string, source string, candidateCount int)

	RecordFetch(
		fetchUrl string,
		httpStatus int,
		duration time.Duration,
		contentType string,
		retryCount int,
		bodyChecksum string,
	)

	RecordArtifact(kind ArtifactKind, value string, attrs []Attribute)
}

// NoopSink, struct that implements metadata.MetadataSink but does nothing.
// Callers (or tests) can decide whether to inject Recorder or NoopSink.
// Purpose is to make metadata orthogonal.

type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordScan(component string, source string, candidateCount int) {}

func (n *NoopSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentType string,
	retryCount int,
	bodyChecksum string,
) {
}

func (n *NoopSink) RecordArtifact(kind ArtifactKind, value string, attrs []Attribute) {}
