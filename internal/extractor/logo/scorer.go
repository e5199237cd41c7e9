package logo

import (
	"net/url"
	"path"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const logoKeyword = "logo"

// Aspect ratios in this band are near-square, typical of icon logos.
const (
	minIconAspectRatio = 0.8
	maxIconAspectRatio = 1.2
)

// iconFriendlyMediaTypes are the declared media types that earn the MIME
// bonus for inline images.
var iconFriendlyMediaTypes = map[string]struct{}{
	"image/png":                {},
	"image/x-icon":             {},
	"image/vnd.microsoft.icon": {},
	"image/svg+xml":            {},
	"image/webp":               {},
	"image/gif":                {},
}

// scoreResolved assigns a confidence score to a candidate whose locator is an
// absolute URL. The score is the sum of independent substring cues over the
// image name (last path segment) and the alt text; when no cue fires, a fuzzy
// partial-similarity ratio between the domain token and the image name keeps
// every candidate comparable.
func scoreResolved(locator string, altText string, domainToken string, weights Weights) int {
	imageName := imageNameOf(locator)
	altText = strings.ToLower(altText)

	score := textCueScore(imageName, altText, domainToken, weights)
	if score > 0 {
		return score
	}

	if domainToken == "" || imageName == "" {
		return 0
	}
	return fuzzy.PartialRatio(domainToken, imageName)
}

// scoreInline assigns a confidence score to an inline candidate. A decoded
// image earns shape and media-type bonuses; alt text is the only text cue
// since there is no filename. A decode failure scores on alt text alone.
func scoreInline(img InlineImage, altText string, domainToken string, weights Weights) int {
	altText = strings.ToLower(altText)
	score := textCueScore("", altText, domainToken, weights)

	if !img.Decoded() {
		return score
	}

	if img.Height() > 0 {
		ratio := float64(img.Width()) / float64(img.Height())
		if ratio >= minIconAspectRatio && ratio <= maxIconAspectRatio {
			score += weights.AspectRatioBonus
		}
	}

	if _, ok := iconFriendlyMediaTypes[img.MediaType()]; ok {
		score += weights.IconMIMEBonus
	}

	return score
}

// textCueScore sums the four independent substring cues. Either input may be
// empty; an empty string never matches.
func textCueScore(imageName string, altText string, domainToken string, weights Weights) int {
	score := 0
	if domainToken != "" {
		if strings.Contains(imageName, domainToken) {
			score += weights.DomainBonus
		}
		if strings.Contains(altText, domainToken) {
			score += weights.DomainBonus
		}
	}
	if strings.Contains(imageName, logoKeyword) {
		score += weights.LogoBonus
	}
	if strings.Contains(altText, logoKeyword) {
		score += weights.LogoBonus
	}
	return score
}

// imageNameOf extracts the lower-cased last path segment of a locator.
func imageNameOf(locator string) string {
	parsed, err := url.Parse(locator)
	if err != nil {
		return strings.ToLower(path.Base(locator))
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return ""
	}
	return strings.ToLower(name)
}
