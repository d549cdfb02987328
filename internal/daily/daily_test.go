package daily

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDateKey(t *testing.T) {
	is := is.New(t)
	loc := time.FixedZone("UTC+10", 10*3600)
	is.Equal(DateKey(time.Date(2024, 3, 2, 5, 0, 0, 0, loc)), "2024-03-01")
}

func TestIndexDeterministic(t *testing.T) {
	is := is.New(t)
	d := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	i := Index(d, "salt", 7)
	is.True(i >= 0 && i < 7)
	is.Equal(Index(d.Add(3*time.Hour), "salt", 7), i) // same day
	is.Equal(Index(d, "salt", 0), 0)
}

func TestForDate(t *testing.T) {
	is := is.New(t)
	d := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	a := ForDate(d, "salt", []int{4, 5, 6, 7})
	b := ForDate(d, "salt", []int{7, 6, 5, 4})
	is.Equal(a, b)
	is.Equal(a.Date, "2024-05-17")
	is.True(a.Length >= 4 && a.Length <= 7)
	is.True(a.Difficulty.Valid())

	// Over a month the salt spreads days across more than one setup.
	seen := map[Round]bool{}
	for i := 0; i < 30; i++ {
		r := ForDate(d.AddDate(0, 0, i), "salt", []int{4, 5, 6, 7})
		r.Date = ""
		seen[r] = true
	}
	is.True(len(seen) > 1)
}
