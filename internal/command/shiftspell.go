package command

import (
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/sqrew/ss9k/pkg/keys"
)

// shiftBuiltins maps a shift-mode base command to the key it selects,
// grounded on original_source/src/commands.rs's execute_shift match arms.
var shiftBuiltins = map[string]keys.Key{
	"left":      {Kind: keys.KindArrowLeft},
	"right":     {Kind: keys.KindArrowRight},
	"up":        {Kind: keys.KindArrowUp},
	"down":      {Kind: keys.KindArrowDown},
	"home":      {Kind: keys.KindHome},
	"end":       {Kind: keys.KindEnd},
	"page up":   {Kind: keys.KindPageUp},
	"page down": {Kind: keys.KindPageDown},
	"tab":       {Kind: keys.KindTab},
	"enter":     {Kind: keys.KindEnter},
	"return":    {Kind: keys.KindEnter},
}

// executeShift performs base `count` times while the shift modifier is
// held, releasing shift on every exit path (spec.md §4.9 chord safety).
// "word left"/"word right" additionally hold Control for the duration.
func (in *Interpreter) executeShift(cmd string) bool {
	base, count := parseTimesSuffix(cmd)
	times := count
	if times < 1 {
		times = 1
	}

	if err := in.Executor.Key(shift, keys.Press); err != nil {
		slog.Error("shift press failed", "err", err)
		return false
	}
	ok := true
	for i := 0; i < times; i++ {
		if !in.shiftOnce(base) {
			ok = false
			break
		}
		if times > 1 && i < times-1 {
			time.Sleep(10 * time.Millisecond)
		}
	}
	if err := in.Executor.Key(shift, keys.Release); err != nil {
		slog.Error("shift release failed", "err", err)
	}
	return ok
}

func (in *Interpreter) shiftOnce(base string) bool {
	if base == "word left" || base == "word right" {
		k := keys.Key{Kind: keys.KindArrowLeft}
		if base == "word right" {
			k = keys.Key{Kind: keys.KindArrowRight}
		}
		if err := in.Executor.Key(ctrl, keys.Press); err != nil {
			slog.Error("shift+word modifier press failed", "err", err)
			return false
		}
		err := in.Executor.Key(k, keys.Click)
		if relErr := in.Executor.Key(ctrl, keys.Release); relErr != nil && err == nil {
			err = relErr
		}
		if err != nil {
			slog.Error("shift+word failed", "err", err)
			return false
		}
		return true
	}

	k, ok := shiftBuiltins[base]
	if !ok {
		slog.Warn("unknown shift command", "command", base)
		return false
	}
	if err := in.Executor.Key(k, keys.Click); err != nil {
		slog.Error("shift command failed", "command", base, "err", err)
		return false
	}
	return true
}

// spellModifiers trigger capitalization of the next spelled character.
var spellModifiers = map[string]bool{
	"capital": true, "cap": true, "uppercase": true, "upper": true,
}

// executeSpell builds a string from NATO/digit/punctuation words (with
// "capital"-style modifiers) and types it. Grounded on
// original_source/src/commands.rs's execute_spell_mode.
func (in *Interpreter) executeSpell(input string) bool {
	words := strings.Fields(input)
	var b strings.Builder
	nextCapital := false

	for _, w := range words {
		if spellModifiers[w] {
			nextCapital = true
			continue
		}
		ch, ok := wordToChar(w)
		if !ok {
			slog.Warn("unknown spell word", "word", w)
			continue
		}
		if nextCapital {
			b.WriteRune(unicode.ToUpper(ch))
			nextCapital = false
		} else {
			b.WriteRune(ch)
		}
	}

	result := b.String()
	if result == "" {
		slog.Warn("spell mode produced no characters")
		return false
	}
	if err := in.Executor.Type(result); err != nil {
		slog.Error("spell type failed", "err", err)
		return false
	}
	return true
}

// wordToChar maps a spoken word to a single character: NATO phonetic,
// number word, punctuation word, or a raw single letter/digit fallback.
// Grounded on lookups.rs's word_to_char.
func wordToChar(word string) (rune, bool) {
	if ch, ok := natoTable[word]; ok {
		return ch, true
	}
	if len([]rune(word)) == 1 {
		r := []rune(word)[0]
		if unicode.IsLetter(r) {
			return unicode.ToLower(r), true
		}
		if unicode.IsDigit(r) {
			return r, true
		}
	}
	return 0, false
}

// executeHold parses keyName and asks the executor to hold it.
func (in *Interpreter) executeHold(keyName string) bool {
	k, ok := parseKeyName(keyName)
	if !ok {
		slog.Warn("unknown key to hold", "key", keyName)
		return false
	}
	if err := in.Executor.Hold(k); err != nil {
		slog.Error("hold failed", "key", keyName, "err", err)
		return false
	}
	return true
}

// executeRelease parses keyName and asks the executor to release it.
func (in *Interpreter) executeRelease(keyName string) bool {
	k, ok := parseKeyName(keyName)
	if !ok {
		slog.Warn("unknown key to release", "key", keyName)
		return false
	}
	if err := in.Executor.Release(k); err != nil {
		slog.Error("release failed", "key", keyName, "err", err)
		return false
	}
	return true
}

func (in *Interpreter) executeReleaseAll() bool {
	n, err := in.Executor.ReleaseAll()
	if err != nil {
		slog.Error("release all failed", "err", err)
		return false
	}
	if n == 0 {
		slog.Info("no keys held")
	}
	return true
}
