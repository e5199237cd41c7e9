package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// grammarSpanPattern pre-filters the document text for spans that can even
// be international numbers: the grammar runs locale-agnostic with no default
// region, so only +-prefixed spans are parseable.
var grammarSpanPattern = regexp.MustCompile(`\+\d[\d\s().-]{5,}`)

// matchGrammar applies the international phone-number grammar to the full
// document text and reformats every valid match to its canonical E.164-style
// representation. Any internal failure of the matcher is returned to the
// caller to be logged and treated as zero matches from this source; it is
// never fatal to the extraction call.
func matchGrammar(text string) (matches []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("phone grammar matcher panicked: %v", r)
		}
	}()

	for _, span := range grammarSpanPattern.FindAllString(text, -1) {
		span = strings.TrimRight(span, " .-()")

		parsed, parseErr := phonenumbers.Parse(span, "")
		if parseErr != nil {
			// Not a recognizable number; the span stays with the regex pass.
			continue
		}
		if !phonenumbers.IsPossibleNumber(parsed) || !phonenumbers.IsValidNumber(parsed) {
			continue
		}
		matches = append(matches, phonenumbers.Format(parsed, phonenumbers.E164))
	}

	return matches, nil
}
