// internal/hangman/partition.go
//
// Candidate partitioning: every live word is mapped to the pattern it would
// display once the already-guessed letters plus the new guess are revealed,
// and words sharing a pattern form one family.

package hangman

import "github.com/samber/lo"

// Letters is a set of guessed letters.
type Letters map[rune]struct{}

// Has reports whether r is in the set.
func (l Letters) Has(r rune) bool {
	_, ok := l[r]
	return ok
}

// Partition groups candidates by the pattern each would produce if exactly
// the letters in guessed plus guess were revealed. Every candidate lands in
// exactly one group and no group is empty. Words inside a group keep the
// relative order they had in candidates.
func Partition(candidates []string, guessed Letters, guess rune) map[Pattern][]string {
	shown := func(r rune) bool { return r == guess || guessed.Has(r) }
	groups := make(map[Pattern][]string)
	for _, w := range candidates {
		p := patternOf(w, shown)
		groups[p] = append(groups[p], w)
	}
	return groups
}

// Counts reduces a partition to the size of each family.
func Counts(groups map[Pattern][]string) map[Pattern]int {
	return lo.MapValues(groups, func(ws []string, _ Pattern) int { return len(ws) })
}
