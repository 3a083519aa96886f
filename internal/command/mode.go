package command

import (
	"strings"
	"unicode"

	"github.com/sqrew/ss9k/internal/state"
)

// applyMode transforms text per the process-wide case mode (spec.md §4.8.2).
// Mode off is a no-op (the caller only reaches here when mode != Off).
func applyMode(mode state.Mode, text string) string {
	switch mode {
	case state.ModeSnake:
		return strings.Join(lowerWords(text), "_")
	case state.ModeCamel:
		words := lowerWords(text)
		for i := 1; i < len(words); i++ {
			words[i] = titleCase(words[i])
		}
		return strings.Join(words, "")
	case state.ModePascal:
		words := lowerWords(text)
		for i := range words {
			words[i] = titleCase(words[i])
		}
		return strings.Join(words, "")
	case state.ModeKebab:
		return strings.Join(lowerWords(text), "-")
	case state.ModeScreamingSnake:
		return strings.Join(upperWords(text), "_")
	case state.ModeCaps:
		return strings.Join(upperWords(text), " ")
	case state.ModeLower:
		return strings.Join(lowerWords(text), " ")
	case state.ModeAlternating:
		return alternatingCase(text)
	case state.ModeSwearing:
		return maskProfanity(text)
	case state.ModeMath:
		return joinSpaced(mathPhrases.matchUnits(text))
	case state.ModeCode:
		return joinCodeStyle(codePhrases.matchUnits(text))
	default:
		return text
	}
}

func lowerWords(text string) []string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

func upperWords(text string) []string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return words
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	for i := 1; i < len(r); i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// alternatingCase lowercases even rune indices and uppercases odd ones,
// counting over every rune including spaces (spec.md §4.8.2 "character-by-character").
func alternatingCase(text string) string {
	r := []rune(text)
	for i, c := range r {
		if i%2 == 0 {
			r[i] = unicode.ToLower(c)
		} else {
			r[i] = unicode.ToUpper(c)
		}
	}
	return string(r)
}

// grawlixChars cycles through this set to build a profanity mask.
const grawlixChars = "@#$%!&*"

// profanitySet is a small fixed list; words whose alphanumeric-stripped
// lowercase form appears here are masked in Swearing mode.
var profanitySet = map[string]bool{
	"damn": true, "hell": true, "crap": true, "shit": true, "fuck": true,
	"bitch": true, "ass": true, "bastard": true, "bullshit": true,
	"dammit": true, "goddamn": true,
}

func maskProfanity(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		stripped := stripNonAlnum(strings.ToLower(w))
		if profanitySet[stripped] {
			words[i] = grawlix(len(w))
		}
	}
	return strings.Join(words, " ")
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func grawlix(wordLen int) string {
	n := clamp(wordLen, 3, 7)
	r := make([]byte, n)
	for i := 0; i < n; i++ {
		r[i] = grawlixChars[i%len(grawlixChars)]
	}
	return string(r)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
