package hangman

import (
	"testing"

	"github.com/matryer/is"
)

func words(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + string(rune('a'+i))
	}
	return out
}

func TestRankOrder(t *testing.T) {
	is := is.New(t)
	ranked := Rank(map[Pattern][]string{
		"a-a--": words(5, "x"), // size 5, 3 blanks
		"aa-a-": words(5, "y"), // size 5, 2 blanks
		"-----": words(3, "z"), // size 3, 5 blanks
		"--a--": words(5, "w"), // size 5, 4 blanks
		"-a---": words(5, "v"), // size 5, 4 blanks
	})
	got := make([]Pattern, len(ranked))
	for i, f := range ranked {
		got[i] = f.Pattern
	}
	is.Equal(got, []Pattern{"--a--", "-a---", "a-a--", "aa-a-", "-----"})
}

func TestSelectHardTieBreakOnBlanks(t *testing.T) {
	is := is.New(t)
	fams := []Family{
		{Pattern: "a-a", Words: words(5, "x")}, // one blank
		{Pattern: "--a", Words: words(5, "y")}, // two blanks
		{Pattern: "---", Words: words(3, "z")}, // three blanks
	}
	is.Equal(Select(fams, Hard, 0), Pattern("--a"))
	is.Equal(Select(fams, Hard, 1), Pattern("--a"))
}

func TestSelectDeterministic(t *testing.T) {
	is := is.New(t)
	fams := []Family{
		{Pattern: "b--", Words: words(2, "x")},
		{Pattern: "-b-", Words: words(2, "y")},
		{Pattern: "--b", Words: words(2, "z")},
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		for turn := 0; turn < 6; turn++ {
			want := Select(fams, d, turn)
			for i := 0; i < 10; i++ {
				is.Equal(Select(fams, d, turn), want)
			}
		}
	}
	is.Equal(Select(fams, Hard, 0), Pattern("--b"))
	is.Equal(Select(fams, Easy, 0), Pattern("-b-"))
}

func TestSelectMercyCadence(t *testing.T) {
	is := is.New(t)
	fams := []Family{
		{Pattern: "big", Words: words(4, "x")},
		{Pattern: "sml", Words: words(1, "y")},
	}
	for turn := 0; turn < 8; turn++ {
		is.Equal(Select(fams, Hard, turn), Pattern("big"))

		easy := Select(fams, Easy, turn)
		if turn%2 == 0 {
			is.Equal(easy, Pattern("sml"))
		} else {
			is.Equal(easy, Pattern("big"))
		}

		medium := Select(fams, Medium, turn)
		if turn%4 == 0 {
			is.Equal(medium, Pattern("sml"))
		} else {
			is.Equal(medium, Pattern("big"))
		}
	}
}

func TestSelectMercyWithSingleFamily(t *testing.T) {
	is := is.New(t)
	fams := []Family{{Pattern: "--", Words: []string{"ab"}}}
	is.Equal(Select(fams, Easy, 0), Pattern("--"))
	is.Equal(Select(fams, Medium, 4), Pattern("--"))
}

func TestSelectDoesNotReorderInput(t *testing.T) {
	is := is.New(t)
	fams := []Family{
		{Pattern: "a", Words: words(1, "x")},
		{Pattern: "-", Words: words(3, "y")},
	}
	_ = Select(fams, Hard, 0)
	is.Equal(fams[0].Pattern, Pattern("a"))
}

func TestDifficultyText(t *testing.T) {
	is := is.New(t)
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		b, err := d.MarshalText()
		is.NoErr(err)
		var back Difficulty
		is.NoErr(back.UnmarshalText(b))
		is.Equal(back, d)
	}
	d, err := ParseDifficulty(" MEDIUM ")
	is.NoErr(err)
	is.Equal(d, Medium)

	_, err = ParseDifficulty("brutal")
	is.True(err != nil)
	_, err = Difficulty(9).MarshalText()
	is.True(err != nil)
}
