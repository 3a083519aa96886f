package command

import "strings"

// applyAliases performs case-insensitive substring search-and-replace of
// each (from, to) pair against text, preserving the original casing of any
// region that does not match an alias. Grounded on
// original_source/src/commands.rs's normalize_aliases, but deliberately
// diverges from it: the original lowercases the entire string up front
// (destroying casing everywhere, not just inside matches); spec.md §9's
// Open Question calls for case-preserving substitution instead (see
// DESIGN.md). Walking by rune rather than byte keeps the resume offset
// correct for multi-byte aliases, which a byte-length resume (as in the
// original) would corrupt.
func applyAliases(text string, aliases map[string]string) string {
	for from, to := range aliases {
		if from == "" {
			continue
		}
		text = replaceCaseInsensitive(text, from, to)
	}
	return text
}

func replaceCaseInsensitive(text, from, to string) string {
	fromRunes := []rune(from)
	textRunes := []rune(text)
	fromLower := []rune(strings.ToLower(from))

	var out []rune
	i := 0
	for i < len(textRunes) {
		if i+len(fromRunes) <= len(textRunes) && runesEqualFold(textRunes[i:i+len(fromRunes)], fromLower) {
			out = append(out, []rune(to)...)
			i += len(fromRunes)
			continue
		}
		out = append(out, textRunes[i])
		i++
	}
	return string(out)
}

func runesEqualFold(window, lowerPattern []rune) bool {
	for i, r := range window {
		if unicodeToLower(r) != lowerPattern[i] {
			return false
		}
	}
	return true
}

func unicodeToLower(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}

// normalizeForDispatch lowercases and strips everything but alphanumerics
// and whitespace, per spec.md §4.8 step 2.
func normalizeForDispatch(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if isAlnum(r) || r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z')
}
