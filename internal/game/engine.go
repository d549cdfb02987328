// internal/game/engine.go
//
// Session engine: one hangman round owned by one player.
// Responsibilities:
//   - Build a round from Settings over a shared dictionary.
//   - Validate raw guesses (a single letter, case-insensitive).
//   - Track state transitions: playing → won/lost.
//   - Materialize the secret word once, when the round ends.
//
// Notes:
//   - The hangman.Manager has no locking; Game serializes access with a mutex
//     so that concurrent requests on the same session are safe.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/evilhangman/internal/hangman"
)

var (
	// ErrFinished is returned when guessing in a round that is over.
	ErrFinished = errors.New("game finished")
	// ErrInvalidGuess is returned for anything but a single letter.
	ErrInvalidGuess = errors.New("invalid guess")
)

// Game holds one hangman session.
type Game struct {
	ID        string
	StartedAt time.Time

	mu       sync.Mutex
	round    *hangman.Manager
	state    State
	answer   string
	lastSeen time.Time
}

// New prepares a round over dictionary. Extra options go to the Manager.
func New(dictionary []string, s Settings, opts ...hangman.Option) (*Game, error) {
	id := randomID()
	if s.Trace {
		opts = append(opts, hangman.WithTrace(log.With().Str("gameId", id).Logger()))
	}
	m := hangman.NewManager(dictionary, opts...)
	if err := m.PrepForRound(s.Length, s.Guesses, s.Difficulty); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Game{
		ID:        id,
		StartedAt: now,
		round:     m,
		state:     StatePlaying,
		lastSeen:  now,
	}, nil
}

// ApplyGuess validates and applies a guess, mutating the session.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly one letter; it is lowercased.
//
// State transitions:
//   - Pattern fully revealed → won.
//   - Otherwise no guesses left → lost.
func (g *Game) ApplyGuess(input string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastSeen = time.Now()

	if g.state != StatePlaying {
		return Result{}, ErrFinished
	}
	letter, err := parseLetter(input)
	if err != nil {
		return Result{}, err
	}
	families, err := g.round.MakeGuess(letter)
	if err != nil {
		return Result{}, err
	}

	pattern := g.round.Pattern()
	switch {
	case pattern.Complete():
		g.finish(StateWon)
	case g.round.GuessesLeft() == 0:
		g.finish(StateLost)
	}
	return Result{
		Pattern:     pattern,
		Hit:         pattern.Contains(letter),
		GuessesLeft: g.round.GuessesLeft(),
		Guessed:     g.round.GuessesMade(),
		State:       g.state,
		Families:    families,
		Answer:      g.answer,
	}, nil
}

// finish ends the round and picks the secret word from what survived.
func (g *Game) finish(s State) {
	g.state = s
	w, err := g.round.SecretWord()
	if err != nil {
		// Every adopted family is non-empty, so this means a broken round.
		log.Error().Err(err).Str("gameId", g.ID).Msg("materialize secret word")
		return
	}
	g.answer = w
}

// View returns a snapshot of the session.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return View{
		ID:          g.ID,
		Pattern:     g.round.Pattern(),
		Length:      g.round.Length(),
		GuessesLeft: g.round.GuessesLeft(),
		Guessed:     g.round.GuessesMade(),
		Difficulty:  g.round.Difficulty(),
		Candidates:  g.round.NumWordsCurrent(),
		State:       g.state,
		Answer:      g.answer,
		StartedAt:   g.StartedAt,
	}
}

// State reports whether the round is still being played.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// IdleSince reports when the session was last touched by a guess.
func (g *Game) IdleSince() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSeen
}

// parseLetter accepts exactly one letter, surrounding space ignored.
func parseLetter(input string) (rune, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: want a single letter, got %q", ErrInvalidGuess, input)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, fmt.Errorf("%w: %q is not a letter", ErrInvalidGuess, input)
	}
	return r, nil
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
