// internal/hangman/family.go
//
// Family ranking and selection.
//
// Families are totally ordered from most to least adversarial:
//   1. larger families first (more words survive),
//   2. then more blanks first (less is revealed),
//   3. then pattern ascending.
//
// The difficulty policy then takes rank 0, or rank 1 on mercy turns.

package hangman

import (
	"cmp"
	"slices"
)

// Family is a pattern together with the candidates that would produce it.
// It only lives for the evaluation of a single guess.
type Family struct {
	Pattern Pattern
	Words   []string
}

// Size is the number of words in the family.
func (f Family) Size() int { return len(f.Words) }

// compareFamilies orders a before b when a is more adversarial.
func compareFamilies(a, b Family) int {
	if c := cmp.Compare(b.Size(), a.Size()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Pattern.Blanks(), a.Pattern.Blanks()); c != 0 {
		return c
	}
	return cmp.Compare(a.Pattern, b.Pattern)
}

// Rank turns a partition into families sorted most adversarial first.
func Rank(groups map[Pattern][]string) []Family {
	fams := make([]Family, 0, len(groups))
	for p, ws := range groups {
		fams = append(fams, Family{Pattern: p, Words: ws})
	}
	slices.SortFunc(fams, compareFamilies)
	return fams
}

// choice is the outcome of applying the difficulty policy to ranked families.
type choice struct {
	index int  // rank of the chosen family
	mercy bool // the policy asked for rank 1 this turn
}

// choose applies the difficulty policy. turn is the number of letters guessed
// before the current one.
func choose(n int, d Difficulty, turn int) choice {
	m := d.mercyEvery()
	if m == 0 || turn%m != 0 {
		return choice{}
	}
	if n < 2 {
		return choice{mercy: true}
	}
	return choice{index: 1, mercy: true}
}

// Select ranks families and returns the pattern the difficulty policy picks
// for this turn. It panics if families is empty.
func Select(families []Family, d Difficulty, turn int) Pattern {
	ranked := slices.Clone(families)
	slices.SortFunc(ranked, compareFamilies)
	return ranked[choose(len(ranked), d, turn).index].Pattern
}
