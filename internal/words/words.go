// internal/words/words.go
//
// Dictionary management for hangman rounds.
//
// Responsibilities:
//   - Load the dictionary from a file, a SQLite table (see sql.go), or the
//     embedded default list in package assets.
//   - Normalize entries: trimmed, lowercased, letters only, no duplicates.
//   - Report how many words exist per length so callers can offer only
//     playable lengths.
//
// A Dictionary is immutable once built and safe to share between sessions.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/robalobadob/evilhangman/assets"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is a normalized, deduplicated word list.
type Dictionary struct {
	words    []string    // sorted
	byLength map[int]int // word length -> count
}

// New normalizes list into a Dictionary. Entries that are not made of
// letters only are dropped.
func New(list []string) (*Dictionary, error) {
	ws := lo.Uniq(lo.FilterMap(list, func(s string, _ int) (string, bool) {
		w := normalize(s)
		return w, w != "" && isLetters(w)
	}))
	if len(ws) == 0 {
		return nil, ErrEmpty
	}
	slices.Sort(ws)
	return &Dictionary{
		words:    ws,
		byLength: lo.CountValuesBy(ws, utf8.RuneCountInString),
	}, nil
}

// Load reads the dictionary from path, one word per line. An empty path
// selects the embedded default list.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		list, err := assets.DictionaryList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded list: %w", err)
		}
		return New(list)
	}
	list, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return New(list)
}

// readWordFile loads one entry per line, skipping blanks and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isLetters reports whether s consists only of letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Words returns the sorted word list. Callers must not modify it.
func (d *Dictionary) Words() []string { return d.words }

// Len is the total number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Count returns how many words have the given length.
func (d *Dictionary) Count(length int) int { return d.byLength[length] }

// Lengths returns every word length with at least one word, ascending.
func (d *Dictionary) Lengths() []int {
	ls := lo.Keys(d.byLength)
	slices.Sort(ls)
	return ls
}

// Stats returns a copy of the per-length word counts.
func (d *Dictionary) Stats() map[int]int {
	return lo.Assign(d.byLength)
}
