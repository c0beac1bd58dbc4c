package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/interview/pkg/nlp"
)

const nameScanLines = 10

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Priority order matters: the first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),    // (123) 456-7890
		regexp.MustCompile(`\d{3}[-.]\d{3}[-.]\d{4}`),        // 123-456-7890
		regexp.MustCompile(`\d{3}[.]\d{3}[.]\d{4}`),          // 123.456.7890
		regexp.MustCompile(`\d{3}\s\d{3}\s\d{4}`),            // 123 456 7890
		regexp.MustCompile(`[+]\d{1,3}\s\d{3}\s\d{3}\s\d{4}`), // +1 123 456 7890
		regexp.MustCompile(`\d{10}`),                         // 1234567890
	}

	reNotNameWords = regexp.MustCompile(`(?i)\b(email|experience|skills|summary|professional|objective)\b`)
	reDigitOrAt    = regexp.MustCompile(`[@\d]`)
	reAllCapsWord  = regexp.MustCompile(`^[A-Z][A-Z.'-]*$`)
	reTitleWord    = regexp.MustCompile("^[A-Z][a-z'`.-]+$")

	// Whole-document fallbacks, tried in order.
	nameRuns = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}`),
		regexp.MustCompile(`[A-Z]+(?:\s+[A-Z]+){1,3}`),
	}
	reSectionWords = regexp.MustCompile(`(?i)\b(EXPERIENCE|EDUCATION|SUMMARY|OBJECTIVE|SKILLS)\b`)
	reLocalPartSep = regexp.MustCompile(`[._]`)
)

// ValidEmail reports whether s is exactly one address of the form the
// extractor recognises.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && reEmail.FindString(s) == s
}

// ExtractCandidateInfo pulls name, email and phone out of raw resume text.
// It never fails: fields that cannot be found are left empty.
func ExtractCandidateInfo(text string) CandidateInfo {
	email := reEmail.FindString(text)
	return CandidateInfo{
		Name:  extractName(text, email),
		Email: email,
		Phone: extractPhone(text),
	}
}

func extractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractName(text, email string) string {
	for _, line := range leadingLines(text, nameScanLines) {
		if looksLikeName(line) {
			return nlp.CollapseSpaces(line)
		}
	}

	for _, re := range nameRuns {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		m = strings.TrimSpace(m)
		if !reSectionWords.MatchString(m) {
			return m
		}
	}

	if email != "" {
		local, _, _ := strings.Cut(email, "@")
		parts := reLocalPartSep.Split(local, -1)
		for i, p := range parts {
			parts[i] = nlp.CapitalizeFirst(p)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// leadingLines returns up to n non-empty trimmed lines from the top of text.
func leadingLines(text string, n int) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
		if len(out) == n {
			break
		}
	}
	return out
}

func looksLikeName(line string) bool {
	if reNotNameWords.MatchString(line) || reDigitOrAt.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	return allMatch(words, reAllCapsWord) || allMatch(words, reTitleWord)
}

func allMatch(words []string, re *regexp.Regexp) bool {
	for _, w := range words {
		if !re.MatchString(w) {
			return false
		}
	}
	return true
}
