package logo_test

import (
	"net/url"
	"testing"

	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/extractor/logo"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/stretchr/testify/require"
)

// compile-time interface checks
var _ metadata.MetadataSink = (*metadata.NoopSink)(nil)
var _ metadata.MetadataSink = (*metadata.Recorder)(nil)

// The 1x1 transparent PNG used to exercise inline decoding.
const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// parseDoc builds a Document from an HTML string for black-box extraction.
func parseDoc(t *testing.T, html string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(html), "text/html; charset=utf-8")
	require.NoError(t, err)
	return doc
}

// acmePageCtx returns a page context whose domain token is "acme".
func acmePageCtx(t *testing.T) page.PageContext {
	t.Helper()
	base, err := url.Parse("https://www.acme.com/about")
	require.NoError(t, err)
	ctx := page.NewPageContext(*base)
	require.Equal(t, "acme", ctx.DomainToken())
	return ctx
}

// defaultWeights mirrors the production scoring defaults.
func defaultWeights() logo.Weights {
	return logo.NewWeights(110, 105, 30, 25, 500)
}

// createTestExtractor builds an extractor with a NoopSink for tests that do
// not assert on recorded metadata.
func createTestExtractor() logo.Extractor {
	return logo.NewExtractor(defaultWeights(), &metadata.NoopSink{})
}

// attrValue returns the value of the first attribute with the given key, or
// the empty string when none is present.
func attrValue(attrs []metadata.Attribute, key metadata.AttributeKey) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
