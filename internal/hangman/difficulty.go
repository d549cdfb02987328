package hangman

import (
	"fmt"
	"strings"
)

// Difficulty controls how often the adversary relents.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// mercyEvery returns the turn modulus on which a less adversarial family is
// picked, or 0 if the difficulty never shows mercy.
func (d Difficulty) mercyEvery() int {
	switch d {
	case Easy:
		return 2
	case Medium:
		return 4
	default:
		return 0
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool { return d >= Easy && d <= Hard }

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
