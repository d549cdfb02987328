// internal/hangman/pattern.go
//
// Pattern is the display string shown to the player: one slot per letter
// of the word, either a revealed letter or Blank.

package hangman

import (
	"strings"
	"unicode/utf8"
)

// Blank marks an unrevealed slot.
const Blank = '-'

// Pattern is a fixed-length sequence of revealed letters and blanks.
// Patterns compare with == and order lexicographically with <.
type Pattern string

// BlankPattern returns a pattern of n blanks.
func BlankPattern(n int) Pattern {
	if n <= 0 {
		return ""
	}
	return Pattern(strings.Repeat(string(Blank), n))
}

// patternOf renders word with only the letters accepted by shown revealed.
func patternOf(word string, shown func(rune) bool) Pattern {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if shown(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Blank)
		}
	}
	return Pattern(b.String())
}

// Len returns the number of slots.
func (p Pattern) Len() int { return utf8.RuneCountInString(string(p)) }

// Blanks counts unrevealed slots.
func (p Pattern) Blanks() int { return strings.Count(string(p), string(Blank)) }

// Contains reports whether letter is revealed anywhere in p.
func (p Pattern) Contains(letter rune) bool {
	return letter != Blank && strings.ContainsRune(string(p), letter)
}

// Complete reports whether every slot is revealed.
func (p Pattern) Complete() bool { return p != "" && p.Blanks() == 0 }

func (p Pattern) String() string { return string(p) }
