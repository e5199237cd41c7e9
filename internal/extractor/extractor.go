package extractor

import (
	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/sitesig/sitesig/pkg/failure"
)

/*
Responsibilities
- Define the capability every signal extractor implements
- Keep extractors independent: no shared mutable state, no ordering
  dependency between the logo path and the phone path

Any type implementing Extract qualifies; no hierarchy is required, only
interface conformance. Per-candidate failures are swallowed at the point of
origin; only global absence-of-any-candidate conditions surface, and they do
so as a None result with a recoverable classified error.
*/

type Extractor interface {
	Extract(doc *document.Document, pageCtx page.PageContext) (Result, failure.ClassifiedError)
}
