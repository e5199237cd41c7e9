package phone_test

import (
	"net/url"
	"testing"

	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/stretchr/testify/require"
)

// compile-time interface checks
var _ metadata.MetadataSink = (*metadata.NoopSink)(nil)
var _ metadata.MetadataSink = (*metadata.Recorder)(nil)

// parseDoc builds a Document from an HTML string for black-box extraction.
func parseDoc(t *testing.T, html string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(html), "text/html; charset=utf-8")
	require.NoError(t, err)
	return doc
}

func testPageCtx(t *testing.T) page.PageContext {
	t.Helper()
	base, err := url.Parse("https://www.acme.com/contact")
	require.NoError(t, err)
	return page.NewPageContext(*base)
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
