package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLunchBreakSplitAppliesToWeekdays(t *testing.T) {
	text := "Unsere Öffnungszeiten:\nMo - Fr: 10:00 - 13:00 Uhr & 14:00 - 18:00 Uhr"

	hours := ExtractOpeningHours(text, "")

	want := "10:00 - 13:00 & 14:00 - 18:00"
	for _, day := range []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"} {
		assert.Equal(t, want, hours[day], day)
	}
	assert.NotContains(t, hours, "Samstag")
	assert.NotContains(t, hours, "Sonntag")
}

func TestWeekdayRangeIncludingSaturday(t *testing.T) {
	text := "Mo - Sa: 09:00 - 18:00 Uhr & 19:00 - 21:00 Uhr"

	hours := ExtractOpeningHours(text, "")

	assert.Equal(t, "09:00 - 18:00 & 19:00 - 21:00", hours["Montag"])
	assert.Equal(t, "09:00 - 18:00 & 19:00 - 21:00", hours["Samstag"])
	assert.NotContains(t, hours, "Sonntag")
}

func TestMoBisSaPhrasing(t *testing.T) {
	hours := ExtractOpeningHours("Geöffnet Mo bis Sa von 9.00 - 18.30 Uhr", "")

	assert.Equal(t, "09:00 - 18:30", hours["Montag"])
	assert.Equal(t, "09:00 - 18:30", hours["Samstag"])
	assert.NotContains(t, hours, "Sonntag")
}

func TestSaSoClosedDoesNotOverwriteWeekdays(t *testing.T) {
	text := "Öffnungszeiten\nMo - Fr: 08:00 - 17:00 Uhr\nSa - So: Geschlossen"

	hours := ExtractOpeningHours(text, "")

	assert.Equal(t, "08:00 - 17:00", hours["Montag"])
	assert.Equal(t, "08:00 - 17:00", hours["Freitag"])
	assert.Equal(t, ClosedMarker, hours["Samstag"])
	assert.Equal(t, ClosedMarker, hours["Sonntag"])
}

func TestPerDayScanWithClosedOverride(t *testing.T) {
	// No composite pattern matches here, so the per-day scan over the
	// keyword context window has to pick up the individual lines.
	text := "Herzlich willkommen\n\nÖffnungszeiten\nMontag 08.30 — 12.30\nDienstag geschlossen\nMittwoch 9 bis 17 Uhr"

	hours := ExtractOpeningHours(text, "")

	assert.Equal(t, "08:30 - 12:30", hours["Montag"])
	assert.Equal(t, ClosedMarker, hours["Dienstag"])
	assert.Equal(t, "09:00 - 17:00", hours["Mittwoch"])
}

func TestHoursFromFooterText(t *testing.T) {
	footer := "Kontakt\nSamstag: 10:00 - 14:00"

	hours := ExtractOpeningHours("Keine Zeiten im Haupttext", footer)

	assert.Equal(t, "10:00 - 14:00", hours["Samstag"])
}

func TestNoHoursFound(t *testing.T) {
	hours := ExtractOpeningHours("Nur ein Werbetext ohne Zeiten.", "")
	assert.Empty(t, hours)
}
