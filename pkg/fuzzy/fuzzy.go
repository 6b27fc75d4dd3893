package fuzzy

import "strings"

// LevenshteinDistance calculates the edit distance between two strings
// This measures how many single-character edits (insertions, deletions, or substitutions)
// are required to change one string into another
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalizeString(s1)
	s2 = normalizeString(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// MatchDomain checks if query fuzzy-matches a domain within a given threshold
// threshold is the maximum allowed edit distance per label
func MatchDomain(query, domain string, threshold int) bool {
	query = normalizeString(query)
	domain = normalizeString(domain)

	if strings.Contains(domain, query) {
		return true
	}

	// Check each dot-separated label of the domain
	for _, label := range strings.Split(domain, ".") {
		if LevenshteinDistance(query, label) <= threshold {
			return true
		}
		if strings.HasPrefix(label, query) {
			return true
		}
	}

	return false
}

// DomainScore scores how relevant a stored domain is to a query.
// Higher score = more relevant. Used to rank autocomplete suggestions.
func DomainScore(query, domain string) float64 {
	query = normalizeString(query)
	domain = normalizeString(domain)
	score := 0.0

	if strings.HasPrefix(domain, query) {
		score += 100.0
	} else if strings.Contains(domain, query) {
		score += 60.0
	}

	// The registrable label (part before the TLD) carries the most signal
	labels := strings.Split(domain, ".")
	host := labels[0]
	if host == "www" && len(labels) > 1 {
		host = labels[1]
	}

	if host == query {
		score += 80.0
	} else if strings.HasPrefix(host, query) {
		score += 50.0
	} else {
		dist := LevenshteinDistance(query, host)
		if dist <= 2 {
			score += 40.0 - float64(dist)*12
		}
	}

	return score
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeString lowercases and collapses whitespace
func normalizeString(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
