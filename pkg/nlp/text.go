package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// ContainsFold сообщает, встречается ли фраза в тексте без учёта регистра.
// Совпадение — обычная подстрока, границы слов не учитываются.
func ContainsFold(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(phrase))
}

// CollapseSpaces заменяет любые серии пробельных символов одним пробелом и обрезает края.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// CapitalizeFirst upper-cases the first letter and keeps the rest as is
// ("john" -> "John", "mcDonald" -> "McDonald").
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CharCount returns the length of s in characters, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
