package crawler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClosedMarker is the literal stored for days a business is closed.
const ClosedMarker = "Geschlossen"

var (
	weekdays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

	dayAliases = []struct {
		day string
		re  *regexp.Regexp
	}{
		{"Montag", regexp.MustCompile(`montag|\bmo\b`)},
		{"Dienstag", regexp.MustCompile(`dienstag|\bdi\b`)},
		{"Mittwoch", regexp.MustCompile(`mittwoch|\bmi\b`)},
		{"Donnerstag", regexp.MustCompile(`donnerstag|\bdo\b`)},
		{"Freitag", regexp.MustCompile(`freitag|\bfr\b`)},
		{"Samstag", regexp.MustCompile(`samstag|sonnabend|\bsa\b`)},
		{"Sonntag", regexp.MustCompile(`sonntag|\bso\b`)},
	}

	hoursKeywords = []string{"öffnungszeiten", "geschäftszeiten", "öffnungszeit", "opening hours", "sprechzeiten"}

	closedRe = regexp.MustCompile(`geschlossen|closed|\bzu\b`)
)

// Composite patterns tried against the full lowercased text, in order.
// The first one that matches wins and later ones are not attempted.
var (
	// "Mo - Fr: 10:00 - 13:00 Uhr & 14:00 - 18:00 Uhr" (lunch-break split)
	weekdayRangeDoubleRe = regexp.MustCompile(`(?:mo|montag)\s*(?:[-–—]|bis)\s*(fr|freitag|sa|samstag)[^\d]{0,20}(\d{1,2})[:.](\d{2})\s*(?:[-–—]|bis)\s*(\d{1,2})[:.](\d{2})\s*(?:uhr)?\s*&\s*(\d{1,2})[:.](\d{2})\s*(?:[-–—]|bis)\s*(\d{1,2})[:.](\d{2})`)

	// "Mo bis Sa 9.00 - 18.00"
	moBisSaRe = regexp.MustCompile(`mo(?:ntag)?\s+bis\s+sa(?:mstag)?[^\d]{0,20}(\d{1,2})[:.](\d{2})\s*(?:[-–—]|bis)\s*(\d{1,2})[:.](\d{2})`)

	// Any single "HH:MM - HH:MM Uhr" range; the Uhr suffix keeps this from
	// swallowing per-day listings that the line scan handles better
	genericRangeRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*(?:[-–—]|bis)\s*(\d{1,2})[:.](\d{2})\s*uhr`)
)

// Per-line patterns for the day-by-day fallback scan, in order.
var lineTimePatterns = []*regexp.Regexp{
	// double range joined by & or und
	regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2})\s*(?:uhr)?\s*(?:&|und)\s*(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2})`),
	// colon separated
	regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-–—]\s*(\d{1,2}):(\d{2})`),
	// dot separated
	regexp.MustCompile(`(\d{1,2})\.(\d{2})\s*[-–—]\s*(\d{1,2})\.(\d{2})`),
	// "9 bis 18 Uhr" with optional minutes
	regexp.MustCompile(`(\d{1,2})(?:[:.](\d{2}))?\s*bis\s*(\d{1,2})(?:[:.](\d{2}))?\s*uhr`),
}

// Targeted last-resort patterns, applied only to days still unset.
var (
	moFrFallbackRe = regexp.MustCompile(`(?:mo|montag)\s*[-–—]\s*(?:fr|freitag)[^\d]{0,20}(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2})(?:\s*(?:uhr)?\s*&\s*(\d{1,2})[:.](\d{2})\s*[-–—]\s*(\d{1,2})[:.](\d{2}))?`)
	saSoClosedRe   = regexp.MustCompile(`sa\s*[-–—]\s*so\s*:?\s*geschlossen`)
)

// ExtractOpeningHours recovers a day-to-time-range mapping from page text.
// extra is the footer/contact-element text harvested separately.
//
// The cascade runs in strict order: composite whole-week patterns first,
// then a per-day scan over the keyword context window, then two targeted
// fallbacks. Days populated by an earlier stage are never overwritten.
func ExtractOpeningHours(text, extra string) map[string]string {
	hours := map[string]string{}

	combined := text
	if extra != "" {
		combined = text + "\n" + extra
	}
	lower := strings.ToLower(combined)

	if !applyCompositePatterns(lower, hours) {
		scanPerDay(keywordContext(text, extra), hours)
	}
	applyTargetedFallbacks(lower, hours)

	return hours
}

// keywordContext returns the lines surrounding the first opening-hours
// keyword (3 before, 5 after), plus the footer/contact text.
func keywordContext(text, extra string) []string {
	lines := strings.Split(text, "\n")
	var window []string

	for i, line := range lines {
		lowerLine := strings.ToLower(line)
		for _, kw := range hoursKeywords {
			if strings.Contains(lowerLine, kw) {
				start := i - 3
				if start < 0 {
					start = 0
				}
				end := i + 6
				if end > len(lines) {
					end = len(lines)
				}
				window = append(window, lines[start:end]...)
				break
			}
		}
		if len(window) > 0 {
			break
		}
	}

	if extra != "" {
		window = append(window, strings.Split(extra, "\n")...)
	}
	return window
}

func applyCompositePatterns(lower string, hours map[string]string) bool {
	if m := weekdayRangeDoubleRe.FindStringSubmatch(lower); m != nil {
		value := formatRange(m[2], m[3], m[4], m[5]) + " & " + formatRange(m[6], m[7], m[8], m[9])
		days := weekdays
		if strings.HasPrefix(m[1], "sa") {
			days = append(weekdays, "Samstag")
		}
		setDays(hours, days, value)
		return true
	}

	if m := moBisSaRe.FindStringSubmatch(lower); m != nil {
		value := formatRange(m[1], m[2], m[3], m[4])
		setDays(hours, append(weekdays, "Samstag"), value)
		return true
	}

	if m := genericRangeRe.FindStringSubmatch(lower); m != nil {
		value := formatRange(m[1], m[2], m[3], m[4])
		days := weekdays
		// Heuristic carried over from the original: a bare range next to
		// "sa ... bis" phrasing usually includes Saturday.
		if strings.Contains(lower, "sa") && strings.Contains(lower, "bis") {
			days = append(weekdays, "Samstag")
		}
		setDays(hours, days, value)
		return true
	}

	return false
}

func scanPerDay(lines []string, hours map[string]string) {
	for _, line := range lines {
		lowerLine := strings.ToLower(line)
		for _, alias := range dayAliases {
			if !alias.re.MatchString(lowerLine) {
				continue
			}
			if _, ok := hours[alias.day]; ok {
				continue
			}
			if closedRe.MatchString(lowerLine) {
				hours[alias.day] = ClosedMarker
				continue
			}
			if value := matchLineRange(lowerLine); value != "" {
				hours[alias.day] = value
			}
		}
	}
}

func matchLineRange(line string) string {
	for i, re := range lineTimePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch i {
		case 0: // double range
			return formatRange(m[1], m[2], m[3], m[4]) + " & " + formatRange(m[5], m[6], m[7], m[8])
		case 3: // "bis" with optional minutes
			return formatRange(m[1], orZero(m[2]), m[3], orZero(m[4]))
		default:
			return formatRange(m[1], m[2], m[3], m[4])
		}
	}
	return ""
}

func applyTargetedFallbacks(lower string, hours map[string]string) {
	if m := moFrFallbackRe.FindStringSubmatch(lower); m != nil {
		value := formatRange(m[1], m[2], m[3], m[4])
		if m[5] != "" {
			value += " & " + formatRange(m[5], m[6], m[7], m[8])
		}
		setDays(hours, weekdays, value)
	}

	if saSoClosedRe.MatchString(lower) {
		setDays(hours, []string{"Samstag", "Sonntag"}, ClosedMarker)
	}
}

// setDays assigns value to each day not already populated.
func setDays(hours map[string]string, days []string, value string) {
	for _, day := range days {
		if _, ok := hours[day]; !ok {
			hours[day] = value
		}
	}
}

func formatRange(h1, m1, h2, m2 string) string {
	return fmt.Sprintf("%02d:%s - %02d:%s", atoi(h1), m1, atoi(h2), m2)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func orZero(s string) string {
	if s == "" {
		return "00"
	}
	return s
}
