package crawler

import (
	"regexp"
	"strings"
)

var (
	// German phone numbers: +49 or a leading 0, then at least 8 digits
	// with the usual separators, ending in a digit.
	phoneRe = regexp.MustCompile(`(?:\+49|0)[\d\s\-/()]{7,}\d`)

	emailRe = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)

	// Postal code plus locality, e.g. "10115 Berlin" or "80331 München"
	addressRe = regexp.MustCompile(`\b\d{5}\s+[A-ZÄÖÜ][a-zäöüß\-]+(?:\s+(?:am|an|im|bei)\s+[A-ZÄÖÜ][a-zäöüß\-]+)?`)
)

// ExtractContactInfo scans the full page text for phone, email, and address.
// Only the first match of each is kept; absence leaves the field empty.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{}

	if m := phoneRe.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := addressRe.FindString(text); m != "" {
		info.Address = strings.TrimSpace(m)
	}

	return info
}
