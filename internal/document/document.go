package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitesig/sitesig/pkg/failure"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

/*
Responsibilities
- Parse fetched bytes into a queryable DOM tree
- Decode non-UTF-8 payloads using the declared content type
- Expose the operations the extractors consume:
    - find all elements by selector
    - read attribute value and presence (via goquery selections)
    - read an element's visible text
    - read a document-wide text extraction

The document never fetches; it only consumes bytes and metadata.
*/

type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML bytes. contentType is the declared
// media type of the payload (may be empty) and is used for charset detection.
// The returned error is fatal: a body that cannot produce a usable tree
// aborts the extraction call.
func Parse(body []byte, contentType string) (*Document, failure.ClassifiedError) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &DocumentError{
			Message: "empty document body",
			Cause:   ErrCauseInvalidDocument,
		}
	}

	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, &DocumentError{
			Message: fmt.Sprintf("charset detection failed: %v", err),
			Cause:   ErrCauseDecodeFailure,
		}
	}

	root, err := html.Parse(reader)
	if err != nil {
		return nil, &DocumentError{
			Message: fmt.Sprintf("failed to parse HTML: %v", err),
			Cause:   ErrCauseNotHTML,
		}
	}

	if !hasHTMLElement(root) {
		return nil, &DocumentError{
			Message: "input is not a valid HTML document",
			Cause:   ErrCauseNotHTML,
		}
	}

	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Find returns all elements matching the selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Text returns the document-wide visible text extraction: the concatenated
// descendant text of the body with script, style and noscript content
// excluded, whitespace-collapsed.
func (d *Document) Text() string {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return VisibleText(d.doc.Selection)
	}
	return VisibleText(body)
}

// VisibleText returns the concatenated descendant text of a selection with
// script, style and noscript subtrees excluded. Runs of whitespace collapse
// to a single space and the result is trimmed.
func VisibleText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		collectVisibleText(node, &sb)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectVisibleText(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectVisibleText(c, sb)
	}
}

// hasHTMLElement checks if the parsed tree has a proper <html> element.
func hasHTMLElement(doc *html.Node) bool {
	var findHTML func(*html.Node) bool
	findHTML = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "html" {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findHTML(c) {
				return true
			}
		}
		return false
	}
	return findHTML(doc)
}
