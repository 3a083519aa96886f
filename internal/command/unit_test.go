package command

import (
	"testing"

	"github.com/sqrew/ss9k/internal/state"
)

func TestApplyAliasesPreservesSurroundingCase(t *testing.T) {
	t.Parallel()
	got := applyAliases("Please E Max now", map[string]string{"e max": "emacs"})
	if got != "Please emacs now" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyAliasesCaseInsensitiveMatch(t *testing.T) {
	t.Parallel()
	got := applyAliases("OPEN term please", map[string]string{"open term": "launch terminal"})
	if got != "launch terminal please" {
		t.Fatalf("got %q", got)
	}
}

func TestParseTimesSuffixWordForm(t *testing.T) {
	t.Parallel()
	base, n := parseTimesSuffix("backspace times three")
	if base != "backspace" || n != 3 {
		t.Fatalf("got base=%q n=%d", base, n)
	}
}

func TestParseTimesSuffixLeadingNumberForm(t *testing.T) {
	t.Parallel()
	base, n := parseTimesSuffix("three times backspace")
	if n != 0 {
		t.Fatalf("leading-number form is not the supported alternate shape; got base=%q n=%d", base, n)
	}
}

func TestParseTimesSuffixTrailingNumberThenTimes(t *testing.T) {
	t.Parallel()
	base, n := parseTimesSuffix("backspace three times")
	if base != "backspace" || n != 3 {
		t.Fatalf("got base=%q n=%d", base, n)
	}
}

func TestParseTimesSuffixAbsentLeavesTextUnchanged(t *testing.T) {
	t.Parallel()
	base, n := parseTimesSuffix("sometimes things happen")
	if n != 0 || base != "sometimes things happen" {
		t.Fatalf("got base=%q n=%d", base, n)
	}
}

func TestNormalizeForMatchingConcatenatesWithoutSpaces(t *testing.T) {
	t.Parallel()
	got := normalizeForMatching("open terminal two")
	if got != "openterminal2" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyModeScreamingSnake(t *testing.T) {
	t.Parallel()
	got := applyMode(state.ModeScreamingSnake, "hello world")
	if got != "HELLO_WORLD" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyModeAlternatingCountsEveryRune(t *testing.T) {
	t.Parallel()
	got := applyMode(state.ModeAlternating, "abc def")
	if got != "aBc dEf" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyModeSwearingGrawlixClampsLength(t *testing.T) {
	t.Parallel()
	got := applyMode(state.ModeSwearing, "damn")
	if len(got) != 4 {
		t.Fatalf("expected masked word to keep its length (4), got %q", got)
	}
	for _, r := range got {
		if r == 'd' || r == 'a' || r == 'm' || r == 'n' {
			t.Fatalf("expected profanity fully masked, got %q", got)
		}
	}
}

func TestApplyModeMathPrefersLongestPhrase(t *testing.T) {
	t.Parallel()
	got := applyMode(state.ModeMath, "greater than or equal to")
	if got != ">=" {
		t.Fatalf("expected longest phrase match >=, got %q", got)
	}
}

func TestApplyModeCodeGluesSymbolsButSpacesWords(t *testing.T) {
	t.Parallel()
	got := applyMode(state.ModeCode, "foo open paren bar close paren")
	if got != "foo(bar)" {
		t.Fatalf("got %q", got)
	}
}
