// internal/game/types.go
//
// Core type definitions for a hosted hangman session.
// Defines:
//   - State: coarse playing/won/lost observation derived from the round.
//   - Settings: how a round is set up.
//   - Result and View: what callers get back after a guess or on lookup.

package game

import (
	"time"

	"github.com/robalobadob/evilhangman/internal/hangman"
)

// State is derived from the round: the core itself never referees.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Settings fix the shape of a round.
type Settings struct {
	Length     int                // word length
	Guesses    int                // wrong guesses allowed
	Difficulty hangman.Difficulty // fixed for the whole round
	Trace      bool               // emit per-guess diagnostics at debug level
}

// Result describes the outcome of one guess.
type Result struct {
	Pattern     hangman.Pattern         `json:"pattern"`
	Hit         bool                    `json:"hit"`
	GuessesLeft int                     `json:"guessesLeft"`
	Guessed     string                  `json:"guessed"`
	State       State                   `json:"state"`
	Families    map[hangman.Pattern]int `json:"families"`
	Answer      string                  `json:"answer,omitempty"`
}

// View is a read-only snapshot of a session.
type View struct {
	ID          string             `json:"id"`
	Pattern     hangman.Pattern    `json:"pattern"`
	Length      int                `json:"length"`
	GuessesLeft int                `json:"guessesLeft"`
	Guessed     string             `json:"guessed"`
	Difficulty  hangman.Difficulty `json:"difficulty"`
	Candidates  int                `json:"candidates"`
	State       State              `json:"state"`
	Answer      string             `json:"answer,omitempty"`
	StartedAt   time.Time          `json:"startedAt"`
}
