package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("bäckerei", "bäckerei"))
	assert.Equal(t, 1, LevenshteinDistance("backerei", "bäckerei"))
	assert.Equal(t, 3, LevenshteinDistance("", "abc"))
}

func TestMatchDomain(t *testing.T) {
	assert.True(t, MatchDomain("beispiel", "www.beispiel.de", 2))
	assert.True(t, MatchDomain("beispeil", "beispiel.de", 2)) // transposition typo
	assert.False(t, MatchDomain("schreinerei", "beispiel.de", 2))
}

func TestDomainScoreOrdering(t *testing.T) {
	prefix := DomainScore("bäcker", "bäckerei-schmidt.de")
	contains := DomainScore("bäcker", "der-bäcker.de")
	unrelated := DomainScore("bäcker", "autohaus-meier.de")

	assert.Greater(t, prefix, contains)
	assert.Greater(t, contains, unrelated)
	assert.Zero(t, unrelated)
}

func TestDomainScoreSkipsWWW(t *testing.T) {
	assert.Greater(t, DomainScore("beispiel", "www.beispiel.de"), 100.0)
}
