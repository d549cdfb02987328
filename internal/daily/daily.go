// Package daily derives the "round of the day": every player who starts a
// daily round on the same UTC date gets the same word length and difficulty.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"slices"
	"time"

	"github.com/robalobadob/evilhangman/internal/hangman"
)

// Round is the setup shared by all players on one date.
type Round struct {
	Date       string             `json:"date"`
	Length     int                `json:"length"`
	Difficulty hangman.Difficulty `json:"difficulty"`
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// digest is HMAC(salt, YYYY-MM-DD).
func digest(date time.Time, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	return h.Sum(nil)
}

// Index returns a deterministic index in [0, n) for a date.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := digest(date, salt)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// ForDate picks the day's word length from lengths and a difficulty.
// lengths must not be empty; they are sorted first so the result does not
// depend on the caller's ordering.
func ForDate(date time.Time, salt string, lengths []int) Round {
	ls := slices.Clone(lengths)
	slices.Sort(ls)
	sum := digest(date, salt)
	return Round{
		Date:       DateKey(date),
		Length:     ls[Index(date, salt, len(ls))],
		Difficulty: hangman.Difficulty(binary.BigEndian.Uint64(sum[8:16]) % 3),
	}
}
