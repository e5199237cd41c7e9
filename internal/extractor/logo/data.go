package logo

// Weights is the caller-supplied scoring policy. It is passed from outside
// (e.g., config) so the scoring weights are tunable without touching scorer
// code.
type Weights struct {
	// DomainBonus is awarded once per cue when the page's domain token is a
	// substring of the image name, and once when it is a substring of the
	// alt text.
	DomainBonus int
	// LogoBonus is awarded once per cue when "logo" is a substring of the
	// image name, and once when it is a substring of the alt text.
	LogoBonus int
	// AspectRatioBonus is awarded to a decoded inline image whose
	// width/height ratio lies in the near-square band [0.8, 1.2].
	AspectRatioBonus int
	// IconMIMEBonus is awarded to a decoded inline image declaring an
	// icon-friendly media type.
	IconMIMEBonus int
	// RelIconScore is the fixed score for link-rel icon hints, which bypass
	// the heuristic scorer entirely.
	RelIconScore int
}

func NewWeights(domainBonus, logoBonus, aspectRatioBonus, iconMIMEBonus, relIconScore int) Weights {
	return Weights{
		DomainBonus:      domainBonus,
		LogoBonus:        logoBonus,
		AspectRatioBonus: aspectRatioBonus,
		IconMIMEBonus:    iconMIMEBonus,
		RelIconScore:     relIconScore,
	}
}

// Candidate is a provisional logo extraction result. Multiple candidates may
// share a locator; only the final selection need be unique.
type Candidate struct {
	locator string
	altText string
	score   int
}

func NewCandidate(locator string, altText string, score int) Candidate {
	return Candidate{
		locator: locator,
		altText: altText,
		score:   score,
	}
}

func (c Candidate) Locator() string {
	return c.locator
}

func (c Candidate) AltText() string {
	return c.altText
}

func (c Candidate) Score() int {
	return c.score
}

// InlineImage is the outcome of decoding a self-contained data-URI image.
// Decoded=false means the payload could not be read; the owning candidate is
// still created but receives only text-based scoring.
type InlineImage struct {
	mediaType string
	width     int
	height    int
	decoded   bool
}

func (i InlineImage) MediaType() string {
	return i.mediaType
}

func (i InlineImage) Width() int {
	return i.width
}

func (i InlineImage) Height() int {
	return i.height
}

func (i InlineImage) Decoded() bool {
	return i.decoded
}
