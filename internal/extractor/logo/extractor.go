package logo

import (
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/extractor"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/sitesig/sitesig/pkg/failure"
	"github.com/sitesig/sitesig/pkg/urlutil"
)

/*
Responsibilities
- Walk the document for link-metadata hints and image elements
- Resolve raw references into absolute locators
- Score every candidate from independent cues
- Select the single highest-scoring locator

Scan Sources
- <link rel> icon hints: authoritative, fixed score, bypass the scorer
- <img src>: resolved then scored; inline data URIs are decoded for
  shape/type cues instead of URL-resolved

Containment
- A single malformed reference or undecodable inline payload is skipped or
  degraded, never fatal; only total absence of candidates surfaces, and it
  surfaces as a None result.
*/

type Extractor struct {
	weights      Weights
	metadataSink metadata.MetadataSink
}

func NewExtractor(weights Weights, metadataSink metadata.MetadataSink) Extractor {
	return Extractor{
		weights:      weights,
		metadataSink: metadataSink,
	}
}

// Extract scans the document and returns the top-ranked logo locator, or a
// None result when no candidate exists.
func (e *Extractor) Extract(doc *document.Document, pageCtx page.PageContext) (extractor.Result, failure.ClassifiedError) {
	candidates, imageCount := e.scan(doc, pageCtx)

	e.metadataSink.RecordScan("logo", "all", len(candidates))

	if len(candidates) == 0 {
		logoErr := &LogoError{
			Message: "no candidate produced a usable locator",
			Cause:   ErrCauseNoCandidates,
		}
		if imageCount == 0 {
			logoErr = &LogoError{
				Message: "document contains no image elements",
				Cause:   ErrCauseNoImages,
			}
		}
		e.metadataSink.RecordError(
			time.Now(),
			"logo",
			"Extractor.Extract",
			mapLogoErrorToMetadataCause(logoErr),
			logoErr.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
			},
		)
		return extractor.None(), logoErr
	}

	selected := selectTop(candidates)

	e.metadataSink.RecordArtifact(
		metadata.ArtifactLogo,
		selected.Locator(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
		},
	)

	return extractor.Single(selected.Locator()), nil
}

// scan produces the raw candidate set and the number of image elements seen.
// The two counts are distinct: a document with images can still yield zero
// candidates when none carries a usable reference.
func (e *Extractor) scan(doc *document.Document, pageCtx page.PageContext) ([]Candidate, int) {
	var candidates []Candidate

	// Link-metadata hints first: their relation attribute marks an icon/logo
	// role, which is an authoritative signal.
	doc.Find("link[rel][href]").Each(func(_ int, sel *goquery.Selection) {
		rel, _ := sel.Attr("rel")
		if !relIndicatesIcon(rel) {
			return
		}
		href, _ := sel.Attr("href")
		locator, err := urlutil.ResolveReference(href, pageCtx.BaseURL())
		if err != nil {
			e.recordSkippedReference(pageCtx, href, err)
			return
		}
		candidates = append(candidates, NewCandidate(locator, "", e.weights.RelIconScore))
	})

	imageCount := 0
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		imageCount++

		src, exists := sel.Attr("src")
		src = strings.TrimSpace(src)
		if !exists || src == "" {
			// An image without a source reference is skipped, not an error.
			return
		}
		altText, _ := sel.Attr("alt")

		if urlutil.IsDataURI(src) {
			candidates = append(candidates, e.inlineCandidate(src, altText, pageCtx))
			return
		}

		locator, err := urlutil.ResolveReference(src, pageCtx.BaseURL())
		if err != nil {
			e.recordSkippedReference(pageCtx, src, err)
			return
		}
		score := scoreResolved(locator, altText, pageCtx.DomainToken(), e.weights)
		candidates = append(candidates, NewCandidate(locator, altText, score))
	})

	return candidates, imageCount
}

// inlineCandidate decodes a data-URI image and scores it. Decode failure is
// contained: the candidate keeps its text cues and the failure is recorded.
func (e *Extractor) inlineCandidate(src string, altText string, pageCtx page.PageContext) Candidate {
	img := decodeInline(src)
	if !img.Decoded() {
		e.metadataSink.RecordError(
			time.Now(),
			"logo",
			"Extractor.inlineCandidate",
			metadata.CauseInlineDecodeFailure,
			"inline image payload could not be decoded",
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
			},
		)
	}
	score := scoreInline(img, altText, pageCtx.DomainToken(), e.weights)
	return NewCandidate(inlineLocator(src), altText, score)
}

func (e *Extractor) recordSkippedReference(pageCtx page.PageContext, raw string, err error) {
	e.metadataSink.RecordError(
		time.Now(),
		"logo",
		"Extractor.scan",
		metadata.CauseContentInvalid,
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrLocator, raw),
			metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
		},
	)
}

// selectTop stable-sorts descending by score and returns the first
// candidate. First-seen order is the tie-break for equal scores, so scan
// order rather than score resolves ties.
func selectTop(candidates []Candidate) Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked[0]
}

// relIndicatesIcon reports whether a link relation token list marks an
// icon/logo role (icon, shortcut icon, apple-touch-icon, mask-icon, ...).
func relIndicatesIcon(rel string) bool {
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if token == "icon" || strings.HasSuffix(token, "-icon") {
			return true
		}
	}
	return false
}
