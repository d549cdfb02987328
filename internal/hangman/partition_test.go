package hangman

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestPartitionGroupsByPattern(t *testing.T) {
	is := is.New(t)
	groups := Partition([]string{"bat", "bet", "bit"}, Letters{}, 'a')

	is.Equal(len(groups), 2)
	is.Equal(groups["-a-"], []string{"bat"})
	is.Equal(groups["---"], []string{"bet", "bit"})
}

func TestPartitionRevealsPreviousGuesses(t *testing.T) {
	is := is.New(t)
	groups := Partition([]string{"bet", "bit", "bee"}, Letters{'b': {}}, 't')

	is.Equal(groups["b-t"], []string{"bet", "bit"})
	is.Equal(groups["b--"], []string{"bee"})
}

func TestPartitionIsComplete(t *testing.T) {
	is := is.New(t)
	words := []string{"ally", "beta", "cool", "deal", "else", "flew", "good", "heal", "lala", "tall"}
	for _, g := range "aelotz" {
		groups := Partition(words, Letters{'l': {}}, g)
		var union []string
		for p, ws := range groups {
			is.True(len(ws) > 0) // no empty family
			for _, w := range ws {
				is.Equal(patternOf(w, func(r rune) bool { return r == g || r == 'l' }), p)
			}
			union = append(union, ws...)
		}
		slices.Sort(union)
		is.Equal(union, words) // every word in exactly one family
	}
}

func TestPartitionDeterministic(t *testing.T) {
	is := is.New(t)
	words := []string{"abc", "abd", "xbz", "bbb", "cab"}
	first := Partition(words, Letters{}, 'b')
	for i := 0; i < 20; i++ {
		is.Equal(Partition(words, Letters{}, 'b'), first)
	}
}

func TestCounts(t *testing.T) {
	is := is.New(t)
	c := Counts(map[Pattern][]string{"a--": {"abc"}, "---": {"xyz", "qrs"}})
	is.Equal(c, map[Pattern]int{"a--": 1, "---": 2})
}

func TestPattern(t *testing.T) {
	is := is.New(t)
	is.Equal(BlankPattern(4), Pattern("----"))
	is.Equal(BlankPattern(0), Pattern(""))

	p := Pattern("b-t")
	is.Equal(p.Len(), 3)
	is.Equal(p.Blanks(), 1)
	is.True(p.Contains('t'))
	is.True(!p.Contains('a'))
	is.True(!p.Contains(Blank))
	is.True(!p.Complete())
	is.True(Pattern("bet").Complete())
	is.True(!Pattern("").Complete())
}
