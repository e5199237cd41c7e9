package phone

// Source identifies which scan strategy produced a candidate. Scan order is
// fixed: links, microdata, class heuristics, contact blocks, free-text regex,
// grammar matcher. Deduplication keeps the first-encountered cleaned form in
// that order.
type Source string

const (
	SourceTelLink        Source = "tel_link"
	SourceMicrodata      Source = "microdata"
	SourceClassHeuristic Source = "class_heuristic"
	SourceContactBlock   Source = "contact_block"
	SourceFreeTextRegex  Source = "free_text_regex"
	SourceGrammarMatcher Source = "grammar_matcher"
)

// Candidate is a provisional phone extraction result. canonicalDigits is
// derived deterministically from cleanedText by retaining digit characters
// only; it is the sole deduplication key.
type Candidate struct {
	rawText         string
	source          Source
	cleanedText     string
	canonicalDigits string
}

// NewCandidate cleans the raw text and derives the canonical digit key.
// A candidate with no digits after cleaning has an empty key and is
// discarded by the scanner at generation time.
func NewCandidate(rawText string, source Source) Candidate {
	cleaned := Clean(rawText)
	return Candidate{
		rawText:         rawText,
		source:          source,
		cleanedText:     cleaned,
		canonicalDigits: CanonicalDigits(cleaned),
	}
}

func (c Candidate) RawText() string {
	return c.rawText
}

func (c Candidate) Source() Source {
	return c.source
}

func (c Candidate) CleanedText() string {
	return c.cleanedText
}

func (c Candidate) CanonicalDigits() string {
	return c.canonicalDigits
}
