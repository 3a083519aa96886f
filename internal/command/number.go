package command

import (
	"strconv"
	"strings"
)

// numberWords maps a spoken number word (including common mishearings "to",
// "too", "for") to its value, grounded on
// original_source/src/commands.rs's parse_number_word, extended through
// "twenty" per spec.md §4.8.1's repetition-suffix requirement.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "to": 2, "too": 2, "three": 3,
	"four": 4, "for": 4, "five": 5, "six": 6, "seven": 7, "eight": 8,
	"nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20,
}

// parseNumberWord parses a digit string or a number word to its value.
func parseNumberWord(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := numberWords[s]
	return n, ok
}

// matchingNumberWords is the narrower {zero..ten, to, too, for} substitution
// set used by the custom-command fuzzy normalizer (spec.md §4.8 step 7),
// distinct from the repetition-suffix's wider {..twenty} vocabulary.
var matchingNumberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "to": "2", "too": "2",
	"three": "3", "four": "4", "for": "4", "five": "5", "six": "6",
	"seven": "7", "eight": "8", "nine": "9", "ten": "10",
}

// normalizeForMatching lowercases, splits on whitespace, substitutes number
// words for digit forms, and concatenates with no spaces — the fuzzy
// normalizer custom commands are matched under. Grounded on
// original_source/src/commands.rs's normalize_for_matching.
func normalizeForMatching(s string) string {
	words := strings.Fields(strings.ToLower(s))
	var b strings.Builder
	for _, w := range words {
		if digit, ok := matchingNumberWords[w]; ok {
			b.WriteString(digit)
		} else {
			b.WriteString(w)
		}
	}
	return b.String()
}

// parseTimesSuffix strips a trailing " times N" or "N times" suffix,
// returning (base, count); count is 0 when no suffix is present. Grounded
// on commands.rs's parse_times_suffix.
func parseTimesSuffix(cmd string) (string, int) {
	if idx := strings.LastIndex(cmd, " times "); idx != -1 {
		after := strings.TrimSpace(cmd[idx+len(" times "):])
		if n, ok := parseNumberWord(after); ok {
			return cmd[:idx], n
		}
	}
	words := strings.Fields(cmd)
	if len(words) >= 2 && words[len(words)-1] == "times" {
		if n, ok := parseNumberWord(words[len(words)-2]); ok {
			lastWordIdx := strings.LastIndex(cmd, words[len(words)-2])
			base := cmd
			if lastWordIdx != -1 {
				base = strings.TrimSpace(cmd[:lastWordIdx])
			}
			return base, n
		}
	}
	return cmd, 0
}
