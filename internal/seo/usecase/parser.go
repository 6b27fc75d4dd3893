package usecase

import (
	"regexp"
	"strings"

	seodomain "seoprofil-backend/internal/seo/domain"
)

// Two completion formats are in circulation: the current plain-text one
// (heading on its own line, no markup) and the older numbered variant with
// bold markdown headings. Each section tries the plain pattern first and
// falls back to the numbered one, so completions from either era parse.
type sectionPatterns struct {
	plain    *regexp.Regexp
	numbered *regexp.Regexp
}

var (
	shortDescPatterns = sectionPatterns{
		plain:    regexp.MustCompile(`(?is)(?:^|\n)[ \t]*kurzbeschreibung\b[^\n]*\n(.*?)(?:\n[ \t]*\n|\n[ \t]*langbeschreibung\b|$)`),
		numbered: regexp.MustCompile(`(?is)1\.\s*\*\*kurzbeschreibung\*\*.*?\n(.*?)(?:\n\n|\n2\.)`),
	}
	longDescPatterns = sectionPatterns{
		plain:    regexp.MustCompile(`(?is)(?:^|\n)[ \t]*langbeschreibung\b[^\n]*\n(.*?)(?:\n[ \t]*\n|\n[ \t]*keywords\b|$)`),
		numbered: regexp.MustCompile(`(?is)2\.\s*\*\*langbeschreibung\*\*.*?\n(.*?)(?:\n\n|\n3\.)`),
	}
	keywordsPatterns = sectionPatterns{
		plain:    regexp.MustCompile(`(?is)(?:^|\n)[ \t]*keywords\b[^\n]*\n(.*?)(?:\n[ \t]*\n|\n[ \t]*(?:leistungen|öffnungszeiten)\b|$)`),
		numbered: regexp.MustCompile(`(?is)3\.\s*\*\*keywords\*\*.*?\n(.*?)(?:\n\n|\n4\.)`),
	}
	hoursPatterns = sectionPatterns{
		plain:    regexp.MustCompile(`(?is)(?:^|\n)[ \t]*öffnungszeiten\b[^\n]*\n(.*?)(?:\n[ \t]*\n|\n[ \t]*impressum\b|$)`),
		numbered: regexp.MustCompile(`(?is)4\.\s*\*\*öffnungszeiten\*\*.*?\n(.*?)(?:\n\n|\n5\.)`),
	}
	companyPatterns = sectionPatterns{
		plain:    regexp.MustCompile(`(?is)(?:^|\n)[ \t]*impressum\b[^\n]*\n(.*?)(?:\n[ \t]*\n|$)`),
		numbered: regexp.MustCompile(`(?is)5\.\s*\*\*impressum\*\*.*?\n(.*?)(?:\n\n|$)`),
	}

	servicesBlockRe = regexp.MustCompile(`(?is)(?:^|\n)[ \t]*leistungen:?[ \t]*\n(.*?)(?:\n[ \t]*\n|$)`)
)

func (p sectionPatterns) extract(text string) string {
	if m := p.plain.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := p.numbered.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ParseResponse recovers the five copy sections from a model completion.
// Sections the completion does not contain come back empty; a completion
// with no recognizable headings yields an all-empty result, never an error.
func ParseResponse(text string) seodomain.ParsedSections {
	sections := seodomain.ParsedSections{
		ShortDescription: shortDescPatterns.extract(text),
		LongDescription:  longDescPatterns.extract(text),
		Keywords:         keywordsPatterns.extract(text),
		OpeningHours:     hoursPatterns.extract(text),
		CompanyInfo:      companyPatterns.extract(text),
	}

	// A separate services list enriches the long description when present.
	if m := servicesBlockRe.FindStringSubmatch(text); m != nil {
		block := strings.TrimSpace(m[1])
		if block != "" {
			if sections.LongDescription != "" {
				sections.LongDescription += "\n\nLeistungen:\n" + block
			} else {
				sections.LongDescription = "Leistungen:\n" + block
			}
		}
	}

	return sections
}
