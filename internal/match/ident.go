package match

import (
	"strings"
	"unicode"
)

// LowerLeadingWord lower-cases the first CamelCase word of s. A leading
// acronym is lower-cased as a whole.
// Examples:
//   - "Verbose" -> "verbose"
//   - "SizeHint" -> "sizeHint"
//   - "HTTPPort" -> "httpPort"
//   - "URL" -> "url"
func LowerLeadingWord(s string) string {
	runes := []rune(s)
	end := len(runes)

	for i := 1; i < len(runes); i++ {
		if isSeparator(runes[i]) || startsToken(runes, i) {
			end = i
			break
		}
	}

	for i := range end {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// HasWordPrefix reports whether s starts with prefix followed by an
// upper-case rune, so "IsFoo" has the word prefix "Is" but "Issue" does not.
func HasWordPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}

	rest := []rune(s[len(prefix):])

	return len(rest) > 0 && unicode.IsUpper(rest[0])
}

// NormalizeIdent case-folds s and strips separators, so "dry-run",
// "dry_run" and "dryRun" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// SnakeCase lower-cases s and joins its CamelCase words with underscores.
// Examples:
//   - "Options" -> "options"
//   - "HTTPOptions" -> "http_options"
//   - "serverConfig" -> "server_config"
func SnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if isSeparator(r) {
			b.WriteByte('_')
			continue
		}

		if i > 0 && startsToken(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken determines if a new CamelCase token starts at position i.
func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "sizeHint": split before 'H'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "HTTPPort": the acronym ends before 'P' because 'o' follows it
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
