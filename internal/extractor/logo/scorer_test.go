package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func productionWeights() Weights {
	return NewWeights(110, 105, 30, 25, 500)
}

func TestScoreResolvedDomainAndKeywordInFilename(t *testing.T) {
	// Arrange
	weights := productionWeights()

	// Act
	score := scoreResolved("https://www.acme.com/img/acme-logo.png", "", "acme", weights)

	// Assert: the filename carries both the domain token and the logo
	// keyword, and nothing else fires, so the sum is exactly 110 + 105.
	assert.Equal(t, 215, score)
}

func TestScoreResolvedAllFourCues(t *testing.T) {
	// Arrange
	weights := productionWeights()

	// Act
	score := scoreResolved("https://www.acme.com/img/acme-logo.png", "Acme logo mark", "acme", weights)

	// Assert: domain and keyword each fire on both the filename and the alt
	// text, so the sum is 2*110 + 2*105.
	assert.Equal(t, 430, score)
}

func TestScoreResolvedOrdering(t *testing.T) {
	// Arrange
	weights := productionWeights()

	// Act
	domainAndKeyword := scoreResolved("https://www.acme.com/img/acme-logo.png", "", "acme", weights)
	keywordOnly := scoreResolved("https://www.acme.com/img/logo.svg", "", "acme", weights)
	fuzzyOnly := scoreResolved("https://www.acme.com/img/photo.jpg", "", "acme", weights)

	// Assert: cue sums dominate the fuzzy fallback, which stays in [0, 100].
	assert.Equal(t, 215, domainAndKeyword)
	assert.Equal(t, 105, keywordOnly)
	assert.Greater(t, keywordOnly, fuzzyOnly)
	assert.GreaterOrEqual(t, fuzzyOnly, 0)
	assert.LessOrEqual(t, fuzzyOnly, 100)
}

func TestScoreResolvedEmptyDomainTokenScoresKeywordOnly(t *testing.T) {
	// Arrange
	weights := productionWeights()

	// Act
	score := scoreResolved("https://203.0.113.7/img/acme-logo.png", "", "", weights)

	// Assert: with no domain token only the keyword cue can fire, and the
	// fuzzy fallback is unavailable.
	assert.Equal(t, 105, score)
}
