package phone

import "regexp"

// freeTextPatterns is the fixed ordered set of phone-shaped patterns applied
// to free-running text. All matches from all patterns are collected; a single
// number may match more than one pattern, and deduplication resolves the
// overlap downstream.
var freeTextPatterns = []*regexp.Regexp{
	// International format: +-prefixed country code with variable group
	// lengths, e.g. +44 20 7946 0958, +1-555-123-4567
	regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?(?:[\s.-]?\d{2,4}){1,4}`),
	// US-style parenthesized area code, e.g. (555) 123-4567
	regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}`),
	// Separated 3-3-4 groups, e.g. 555-123-4567, 555.123.4567, 555 123 4567
	regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
	// Bare 10-digit run, e.g. 5551234567
	regexp.MustCompile(`\b\d{10}\b`),
}

// matchFreeText collects all pattern matches over a text block, in pattern
// order then match order.
func matchFreeText(text string) []string {
	var matches []string
	for _, pattern := range freeTextPatterns {
		matches = append(matches, pattern.FindAllString(text, -1)...)
	}
	return matches
}
