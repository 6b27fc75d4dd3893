package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	text := `Müller GmbH
Musterstraße 12, 10115 Berlin
Telefon: +49 30 1234567
E-Mail: info@example.de`

	info := ExtractContactInfo(text)

	assert.Equal(t, "+49 30 1234567", info.Phone)
	assert.Equal(t, "info@example.de", info.Email)
	assert.Equal(t, "10115 Berlin", info.Address)
}

func TestExtractContactInfoFirstMatchWins(t *testing.T) {
	text := "info@example.de und später vertrieb@example.de, Tel 030 9876543 oder 0171 2223344"

	info := ExtractContactInfo(text)

	assert.Equal(t, "info@example.de", info.Email)
	assert.Equal(t, "030 9876543", info.Phone)
}

func TestExtractContactInfoAbsentFieldsStayEmpty(t *testing.T) {
	info := ExtractContactInfo("Nur ein Text ohne Kontaktdaten")

	assert.Empty(t, info.Phone)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Address)
}
