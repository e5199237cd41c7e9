package phone_test

import (
	"testing"

	"github.com/sitesig/sitesig/internal/extractor"
	"github.com/sitesig/sitesig/internal/extractor/phone"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TelLink(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<a href="tel:+1-555-123-4567">Call us</a>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	require.Equal(t, extractor.KindMultiple, res.Kind())
	assert.Equal(t, []string{"+1 555 123 4567"}, res.Values())
}

func TestExtract_TelLinkSchemeIsCaseInsensitive(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<a href="TEL:555-111-2222">Call</a>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"555 111 2222"}, res.Values())
}

func TestExtract_Microdata(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<div itemscope itemtype="https://schema.org/Organization">
			<span itemprop="telephone">+44 20 7946 0958</span>
		</div>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"+44 20 7946 0958"}, res.Values())
}

func TestExtract_ClassHeuristic(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<div class="phone">Tel: 555 123 4567</div>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"555 123 4567"}, res.Values())
}

func TestExtract_IdHeuristic(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<span id="tel">555-987-6543</span>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"555 987 6543"}, res.Values())
}

func TestExtract_ContactBlock(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<footer class="footer">
			<p>Reach us: (555) 987-6543</p>
		</footer>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"(555) 987 6543"}, res.Values())
}

func TestExtract_FreeTextRegex(t *testing.T) {
	// Arrange: the number lives in plain paragraph text with no markup cues.
	doc := parseDoc(t, `<html><body>
		<p>Give us a ring on 555-123-4567 during office hours.</p>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"555 123 4567"}, res.Values())
}

func TestExtract_GrammarMatcherCatchesUnpatternedInternational(t *testing.T) {
	// Arrange: single-spaced digits defeat every free-text pattern, but the
	// grammar pass parses and reformats the number.
	doc := parseDoc(t, `<html><body>
		<p>Call +4 4 2 0 7 9 4 6 0 9 5 8 now</p>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"+442079460958"}, res.Values())
}

func TestExtract_PunctuationVariantsCollapse(t *testing.T) {
	// Arrange: same digit sequence in two formats; the first cleaned form in
	// scan order is the one kept.
	doc := parseDoc(t, `<html><body>
		<p>Call 555-123-4567 or 555.123.4567</p>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"555 123 4567"}, res.Values())
}

func TestExtract_TelLinkFormPrecedesFreeTextForm(t *testing.T) {
	// Arrange: the same number appears as a link target and in body text; the
	// link is scanned first, so its cleaned form wins the dedup slot.
	doc := parseDoc(t, `<html><body>
		<a href="tel:+1 (555) 123-4567">Call</a>
		<p>Or dial +1.555.123.4567 yourself.</p>
		<p>Fax: 555-333-4444</p>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"+1 (555) 123 4567", "555 333 4444"}, res.Values())
}

func TestExtract_EmptyDocumentYieldsNone(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body><p>Welcome to our site</p></body></html>`)
	recorder := metadata.NewRecorder()
	e := phone.NewExtractor(recorder)

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.Error(t, err)
	assert.Equal(t, extractor.KindNone, res.Kind())
	assert.Equal(t, "None", res.Render())

	var phoneErr *phone.PhoneError
	require.ErrorAs(t, err, &phoneErr)
	assert.Equal(t, phone.PhoneErrorCause(phone.ErrCauseNoCandidates), phoneErr.Cause)
	assert.Equal(t, failure.SeverityRecoverable, err.Severity())

	require.Len(t, recorder.Errors(), 1)
	assert.Equal(t, metadata.ErrorCause(metadata.CauseContentInvalid), recorder.Errors()[0].Cause())
	assert.Equal(t, "https://www.acme.com/contact", attrValue(recorder.Errors()[0].Attrs(), metadata.AttrURL))
}

func TestExtract_DigitlessMatchesAreDiscarded(t *testing.T) {
	// Arrange: a tel link whose target cleans down to nothing contributes no
	// candidate.
	doc := parseDoc(t, `<html><body>
		<a href="tel:n/a">Call</a>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.Error(t, err)
	assert.Equal(t, extractor.KindNone, res.Kind())
}

func TestExtract_ScriptContentIsInvisible(t *testing.T) {
	// Arrange: numbers inside script bodies never reach the text passes.
	doc := parseDoc(t, `<html><body>
		<script>var support = "555-123-4567";</script>
		<p>no contact details here</p>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.Error(t, err)
	assert.Equal(t, extractor.KindNone, res.Kind())
}

func TestExtract_RecordsOneArtifactPerNumber(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<a href="tel:555-111-2222">Sales</a>
		<a href="tel:555-333-4444">Support</a>
	</body></html>`)
	recorder := metadata.NewRecorder()
	e := phone.NewExtractor(recorder)

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	require.Equal(t, []string{"555 111 2222", "555 333 4444"}, res.Values())
	require.Len(t, recorder.Artifacts(), 2)
	assert.Equal(t, metadata.ArtifactPhone, recorder.Artifacts()[0].Kind())
	assert.Equal(t, "555 111 2222", recorder.Artifacts()[0].Value())
	assert.Equal(t, "555 333 4444", recorder.Artifacts()[1].Value())
	assert.Equal(t, "https://www.acme.com/contact", attrValue(recorder.Artifacts()[0].Attrs(), metadata.AttrURL))
}

func TestExtract_RendersCommaSeparatedList(t *testing.T) {
	// Arrange
	doc := parseDoc(t, `<html><body>
		<a href="tel:555-111-2222">Sales</a>
		<a href="tel:555-333-4444">Support</a>
	</body></html>`)
	e := phone.NewExtractor(&metadata.NoopSink{})

	// Act
	res, err := e.Extract(doc, testPageCtx(t))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "555 111 2222, 555 333 4444", res.Render())
}
