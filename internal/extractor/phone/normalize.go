package phone

import "strings"

// Clean strips formatting noise from raw phone text: only digits, '+', '(',
// ')', '-' and spaces survive, the result is trimmed, and hyphens become
// spaces so the final cleaned form uses spaces as the separator.
func Clean(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' || r == '(' || r == ')' || r == '-' || r == ' ':
			sb.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(sb.String())
	return strings.ReplaceAll(cleaned, "-", " ")
}

// CanonicalDigits strips everything but digits from a cleaned phone string.
// It is the sole deduplication key; an empty key means no digits survived
// cleaning.
func CanonicalDigits(cleaned string) string {
	var sb strings.Builder
	for _, r := range cleaned {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// dedupe collapses candidates by canonical digit key, keeping the
// first-encountered cleaned form in scan order. Candidates with an empty key
// never reach this point, but are excluded again here as a guard.
func dedupe(candidates []Candidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	var ordered []string
	for _, c := range candidates {
		key := c.CanonicalDigits()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, c.CleanedText())
	}
	return ordered
}
