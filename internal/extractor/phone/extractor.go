package phone

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/extractor"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/sitesig/sitesig/pkg/failure"
)

/*
Responsibilities
- Walk the document across five independent source strategies
- Clean formatting noise from raw phone text
- Collapse duplicates by canonical digit sequence
- Return the full deduplicated, ordered set

Scan Sources (fixed order, non-exclusive)
 1. Explicit telephone links (a[href^="tel:"])
 2. Microdata itemprop telephone/phone/fax roles
 3. Class/id naming heuristics (phone, tel, fax tokens)
 4. Contact-block containers (Organization/Person/LocalBusiness itemtypes,
    contact/footer/header class tokens), regex over their visible text
 5. Free-text regex over the whole document, then the grammar matcher

Containment
- A candidate with no digits after cleaning is discarded at generation time
- An internal grammar-matcher failure contributes zero matches and is
  recorded, never fatal
*/

const telSchemePrefix = "tel:"

// microdataPhoneProps are the itemprop values naming a telephone role.
var microdataPhoneProps = map[string]struct{}{
	"telephone": {},
	"phone":     {},
	"fax":       {},
	"faxnumber": {},
}

// classHeuristicTokens mark elements whose class or id token-list suggests
// phone content.
var classHeuristicTokens = map[string]struct{}{
	"phone": {},
	"tel":   {},
	"fax":   {},
}

// contactBlockClassTokens mark container elements whose visible text is
// worth a regex pass.
var contactBlockClassTokens = map[string]struct{}{
	"contact": {},
	"footer":  {},
	"header":  {},
	"phone":   {},
	"tel":     {},
}

// contactBlockItemTypes are the schema entity names identifying a
// contact-bearing block.
var contactBlockItemTypes = []string{
	"organization",
	"person",
	"localbusiness",
}

type Extractor struct {
	metadataSink metadata.MetadataSink
}

func NewExtractor(metadataSink metadata.MetadataSink) Extractor {
	return Extractor{
		metadataSink: metadataSink,
	}
}

// Extract scans the document and returns the ordered, deduplicated phone
// set, or a None result when every source comes up empty.
func (e *Extractor) Extract(doc *document.Document, pageCtx page.PageContext) (extractor.Result, failure.ClassifiedError) {
	var candidates []Candidate

	add := func(raw string, source Source) bool {
		c := NewCandidate(raw, source)
		if c.CanonicalDigits() == "" {
			// No digits survived cleaning: not a match at all.
			return false
		}
		candidates = append(candidates, c)
		return true
	}

	e.scanTelLinks(doc, add)
	e.scanMicrodata(doc, add)
	e.scanClassHeuristics(doc, add)
	e.scanContactBlocks(doc, add)
	e.scanFreeText(doc, add)
	e.scanGrammar(doc, pageCtx, add)

	cleaned := dedupe(candidates)

	if len(cleaned) == 0 {
		phoneErr := &PhoneError{
			Message: "all sources empty after deduplication",
			Cause:   ErrCauseNoCandidates,
		}
		e.metadataSink.RecordError(
			time.Now(),
			"phone",
			"Extractor.Extract",
			mapPhoneErrorToMetadataCause(phoneErr),
			phoneErr.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
			},
		)
		return extractor.None(), phoneErr
	}

	for _, number := range cleaned {
		e.metadataSink.RecordArtifact(
			metadata.ArtifactPhone,
			number,
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
			},
		)
	}

	return extractor.Multiple(cleaned), nil
}

// scanTelLinks collects anchors whose link target begins with the telephone
// scheme; the raw text is the remainder after the prefix.
func (e *Extractor) scanTelLinks(doc *document.Document, add func(string, Source) bool) {
	count := 0
	doc.Find(`a[href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(strings.ToLower(href), telSchemePrefix) {
			return
		}
		if add(href[len(telSchemePrefix):], SourceTelLink) {
			count++
		}
	})
	e.metadataSink.RecordScan("phone", string(SourceTelLink), count)
}

// scanMicrodata collects elements whose semantic item-property attribute
// names a telephone role; the raw text is the element's visible text.
func (e *Extractor) scanMicrodata(doc *document.Document, add func(string, Source) bool) {
	count := 0
	doc.Find("[itemprop]").Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("itemprop")
		if _, ok := microdataPhoneProps[strings.ToLower(strings.TrimSpace(prop))]; !ok {
			return
		}
		if add(document.VisibleText(sel), SourceMicrodata) {
			count++
		}
	})
	e.metadataSink.RecordScan("phone", string(SourceMicrodata), count)
}

// scanClassHeuristics collects elements whose class or id token-list
// contains a phone-suggesting token.
func (e *Extractor) scanClassHeuristics(doc *document.Document, add func(string, Source) bool) {
	count := 0
	doc.Find("[class],[id]").Each(func(_ int, sel *goquery.Selection) {
		if !hasAnyToken(sel, classHeuristicTokens) {
			return
		}
		if add(document.VisibleText(sel), SourceClassHeuristic) {
			count++
		}
	})
	e.metadataSink.RecordScan("phone", string(SourceClassHeuristic), count)
}

// scanContactBlocks applies the free-text patterns to the visible text of
// elements identified as contact-bearing containers.
func (e *Extractor) scanContactBlocks(doc *document.Document, add func(string, Source) bool) {
	count := 0
	doc.Find("[itemtype],[class]").Each(func(_ int, sel *goquery.Selection) {
		if !isContactBlock(sel) {
			return
		}
		for _, match := range matchFreeText(document.VisibleText(sel)) {
			if add(match, SourceContactBlock) {
				count++
			}
		}
	})
	e.metadataSink.RecordScan("phone", string(SourceContactBlock), count)
}

// scanFreeText applies the pattern set to the whole document's visible text.
func (e *Extractor) scanFreeText(doc *document.Document, add func(string, Source) bool) {
	count := 0
	for _, match := range matchFreeText(doc.Text()) {
		if add(match, SourceFreeTextRegex) {
			count++
		}
	}
	e.metadataSink.RecordScan("phone", string(SourceFreeTextRegex), count)
}

// scanGrammar runs the international grammar over the whole document text.
// A matcher failure is recorded and contributes zero candidates.
func (e *Extractor) scanGrammar(doc *document.Document, pageCtx page.PageContext, add func(string, Source) bool) {
	matches, err := matchGrammar(doc.Text())
	if err != nil {
		e.metadataSink.RecordError(
			time.Now(),
			"phone",
			"Extractor.scanGrammar",
			metadata.CauseGrammarMatcherFailure,
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, pageCtx.BaseURLString()),
			},
		)
		e.metadataSink.RecordScan("phone", string(SourceGrammarMatcher), 0)
		return
	}

	count := 0
	for _, match := range matches {
		if add(match, SourceGrammarMatcher) {
			count++
		}
	}
	e.metadataSink.RecordScan("phone", string(SourceGrammarMatcher), count)
}

// hasAnyToken reports whether the selection's class or id token-list
// contains any of the given tokens.
func hasAnyToken(sel *goquery.Selection, tokens map[string]struct{}) bool {
	class, _ := sel.Attr("class")
	for _, token := range strings.Fields(strings.ToLower(class)) {
		if _, ok := tokens[token]; ok {
			return true
		}
	}
	id, _ := sel.Attr("id")
	if _, ok := tokens[strings.ToLower(strings.TrimSpace(id))]; ok {
		return true
	}
	return false
}

// isContactBlock reports whether the element's semantic item-type identifies
// an Organization/Person/LocalBusiness entity or its class tokens mark a
// contact-bearing container.
func isContactBlock(sel *goquery.Selection) bool {
	if itemType, exists := sel.Attr("itemtype"); exists {
		lowered := strings.ToLower(itemType)
		for _, entity := range contactBlockItemTypes {
			if strings.Contains(lowered, entity) {
				return true
			}
		}
	}

	class, _ := sel.Attr("class")
	for _, token := range strings.Fields(strings.ToLower(class)) {
		if _, ok := contactBlockClassTokens[token]; ok {
			return true
		}
	}
	return false
}
