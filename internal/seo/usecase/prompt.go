package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"seoprofil-backend/internal/crawler"
)

const systemPrompt = "Du bist ein erfahrener SEO-Experte und Texter für Google-Unternehmensprofile."

const promptHeader = `[**ROLLE** Du bist ein erfahrener SEO-Texter und Experte für Google-Unternehmensprofile. **ZIEL** Erstelle eine prägnante, suchmaschinenoptimierte und zugleich kundenfreundliche Unternehmensbeschreibung für ein Google-Unternehmensprofil. Keine Quellenverweise. Es soll ein guter Werbetext sein wie von einem SEO Profi geschrieben.

--- ### ARBEITSABLAUF — SCHRITT FÜR SCHRITT
1. **Website analysieren**
Prüfe und notiere:
• Dienstleistungen / Produkte
• Alleinstellungsmerkmale (USPs)
• Zielgruppe
• Standort
• Öffnungszeiten
• Impressumsangaben (Firmenname, Adresse, Geschäftsführer, E-Mail, Telefonnummer, Kontakt, Handelsregister, USt-ID)
2. **Inhalte aufbereiten**
– Aktive, klare Sprache; keine Füllwörter.
– Kundennutzen und Mehrwert deutlich herausstellen.
– Zehn relevante SEO-Keywords natürlich einbauen (kein Keyword-Stuffing); fehlende Infos mit „[Angabe fehlt]" kennzeichnen.
– Bei mehreren Standorten jeden Standort separat mit vollständigen Daten aufführen.
`

const promptOutputStructure = `
--- ### AUSGABESTRUKTUR *(Rein als Klartext, keine Markdown-Syntax verwenden)*

Kurzbeschreibung (max. 150 Zeichen)
<Knackige Zusammenfassung des Angebots>

Langbeschreibung (ca. 750 Zeichen)
<Ausführliche, SEO-optimierte Beschreibung mit USPs, Keywords und Kundennutzen>

Keywords
– Keyword 1, Keyword 2, … Keyword 10

Leistungen:
– <Leistung 1>
– <Leistung 2>

Öffnungszeiten
– Montag–Freitag: <Zeiten>
– Samstag: <Zeiten>
– Sonntag: <Zeiten>

Impressum
Unternehmen: <Firmenname>
Adresse: <Straße, PLZ, Stadt>
Geschäftsführer: <n>
Kontakt: <Telefon, E-Mail>

--- ### HINWEISE
* Keine Quellenangaben, Fußnoten, URLs oder sonstige Verweise im Text.
* Zeichenlimits strikt einhalten.
* Qualität vor Quantität: klare, informative und überzeugende Formulierungen.
`

// BuildPrompt assembles the copywriting brief for a domain. When crawl data
// is supplied the extracted facts are embedded so the model works from the
// real site instead of guessing; otherwise the model is only handed the
// domain, matching the pre-crawler behavior kept behind the config flag.
func BuildPrompt(domain string, crawlData *crawler.Result) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString(promptOutputStructure)

	if crawlData != nil && crawlData.Success {
		b.WriteString("\n--- ### WEBSITE-DATEN (bereits extrahiert)\n")
		fmt.Fprintf(&b, "Titel: %s\n", crawlData.Title)
		fmt.Fprintf(&b, "Meta-Beschreibung: %s\n", crawlData.MetaDescription)
		fmt.Fprintf(&b, "Kontaktdaten: %s\n", marshalContact(crawlData.ContactInfo))
		fmt.Fprintf(&b, "Öffnungszeiten: %s\n", marshalHours(crawlData.OpeningHours))
		fmt.Fprintf(&b, "\nSeiteninhalt:\n%s\n", crawlData.Content)
	}

	fmt.Fprintf(&b, "\nBitte analysiere die Website: %s", domain)
	return b.String()
}

func marshalContact(info crawler.ContactInfo) string {
	m := map[string]string{}
	if info.Phone != "" {
		m["telefon"] = info.Phone
	}
	if info.Email != "" {
		m["email"] = info.Email
	}
	if info.Address != "" {
		m["adresse"] = info.Address
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func marshalHours(hours map[string]string) string {
	if hours == nil {
		hours = map[string]string{}
	}
	data, err := json.Marshal(hours)
	if err != nil {
		return "{}"
	}
	return string(data)
}
