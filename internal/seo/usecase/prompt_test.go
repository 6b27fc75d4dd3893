package usecase

import (
	"testing"

	"seoprofil-backend/internal/crawler"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptWithoutCrawlData(t *testing.T) {
	prompt := BuildPrompt("example.de", nil)

	assert.Contains(t, prompt, "Bitte analysiere die Website: example.de")
	assert.Contains(t, prompt, "AUSGABESTRUKTUR")
	assert.NotContains(t, prompt, "WEBSITE-DATEN")
}

func TestBuildPromptEmbedsCrawledFacts(t *testing.T) {
	crawlData := &crawler.Result{
		URL:             "https://example.de",
		Title:           "Muster Friseur Berlin",
		MetaDescription: "Ihr Friseur in Mitte",
		Content:         "Willkommen bei Muster Friseur.",
		ContactInfo: crawler.ContactInfo{
			Phone: "+49 30 1234567",
			Email: "info@example.de",
		},
		OpeningHours: map[string]string{"Montag": "09:00 - 18:00"},
		Success:      true,
	}

	prompt := BuildPrompt("example.de", crawlData)

	assert.Contains(t, prompt, "WEBSITE-DATEN")
	assert.Contains(t, prompt, "Titel: Muster Friseur Berlin")
	assert.Contains(t, prompt, "Meta-Beschreibung: Ihr Friseur in Mitte")
	assert.Contains(t, prompt, `"telefon":"+49 30 1234567"`)
	assert.Contains(t, prompt, `"email":"info@example.de"`)
	assert.Contains(t, prompt, `"Montag":"09:00 - 18:00"`)
	assert.Contains(t, prompt, "Willkommen bei Muster Friseur.")
	assert.Contains(t, prompt, "Bitte analysiere die Website: example.de")
}

func TestBuildPromptSkipsFactsOnFailedCrawl(t *testing.T) {
	crawlData := &crawler.Result{
		URL:     "https://example.de",
		Success: false,
		Error:   "Fehler beim Abrufen der Website",
	}

	prompt := BuildPrompt("example.de", crawlData)

	assert.NotContains(t, prompt, "WEBSITE-DATEN")
	assert.Contains(t, prompt, "Bitte analysiere die Website: example.de")
}
