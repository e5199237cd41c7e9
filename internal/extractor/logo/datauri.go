package logo

import (
	"bytes"
	"encoding/base64"
	"image"
	"net/url"
	"strings"

	// Decoder registrations for dimension probing of inline payloads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/sitesig/sitesig/pkg/hashutil"
	"github.com/sitesig/sitesig/pkg/urlutil"
)

// inlineLocatorPrefix marks candidates whose image lives in the document
// itself rather than behind a URL. The suffix is a short content hash so two
// identical inline images share a locator.
const inlineLocatorPrefix = "inline:"

// decodeInline decodes a data-URI image reference into its declared media
// type and pixel dimensions. It never fails to the caller: any malformed
// encoding or unreadable payload yields a result with Decoded()==false and
// the candidate falls back to text-based scoring.
func decodeInline(raw string) InlineImage {
	meta, payload, ok := splitDataURI(raw)
	if !ok {
		return InlineImage{}
	}

	mediaType, data, ok := decodePayload(meta, payload)
	if !ok {
		return InlineImage{mediaType: mediaType}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return InlineImage{mediaType: mediaType}
	}

	return InlineImage{
		mediaType: mediaType,
		width:     cfg.Width,
		height:    cfg.Height,
		decoded:   true,
	}
}

// inlineLocator mints the stable locator for an inline candidate.
func inlineLocator(raw string) string {
	return inlineLocatorPrefix + hashutil.ShortHash([]byte(raw))
}

// splitDataURI separates "data:<meta>,<payload>" into its two halves.
func splitDataURI(raw string) (meta string, payload string, ok bool) {
	if !urlutil.IsDataURI(raw) {
		return "", "", false
	}
	rest := raw[len(urlutil.DataURIPrefix):]
	comma := strings.Index(rest, ",")
	if comma < 0 {
		return "", "", false
	}
	return rest[:comma], rest[comma+1:], true
}

// decodePayload decodes the payload half of a data URI. The meta half names
// the media type and, optionally, a base64 marker; without the marker the
// payload is percent-encoded text.
func decodePayload(meta string, payload string) (mediaType string, data []byte, ok bool) {
	isBase64 := false
	for i, part := range strings.Split(meta, ";") {
		part = strings.TrimSpace(strings.ToLower(part))
		if i == 0 {
			mediaType = part
			continue
		}
		if part == "base64" {
			isBase64 = true
		}
	}

	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some generators emit unpadded payloads.
			decoded, err = base64.RawStdEncoding.DecodeString(payload)
			if err != nil {
				return mediaType, nil, false
			}
		}
		return mediaType, decoded, true
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return mediaType, nil, false
	}
	return mediaType, []byte(unescaped), true
}
