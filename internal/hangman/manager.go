// internal/hangman/manager.go
//
// Manager runs rounds of evil hangman over a fixed dictionary.
//
// A round starts at PrepForRound, which filters the dictionary to words of
// the requested length and resets the pattern, guess log and budget. Each
// MakeGuess partitions the live words, ranks the families, lets the
// difficulty policy pick one and adopts it wholesale. The secret word is
// only materialized on request by SecretWord.
//
// A Manager is not safe for concurrent use; hosts give every session its own.

package hangman

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Option configures a Manager.
type Option func(*Manager)

// WithRand injects the randomness used by SecretWord.
func WithRand(r Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// WithTrace enables per-guess diagnostic lines at debug level.
func WithTrace(l zerolog.Logger) Option {
	return func(m *Manager) { m.trace = l }
}

// Manager owns the dictionary and the state of the current round.
type Manager struct {
	dictionary []string
	rng        Rand
	trace      zerolog.Logger

	prepared    bool
	length      int
	guessesLeft int
	difficulty  Difficulty
	candidates  []string // sorted, replaced wholesale on every guess
	pattern     Pattern
	guessed     []rune
	guessedSet  Letters
}

// NewManager builds a Manager over words. Duplicates are dropped; the slice
// itself is never modified.
func NewManager(words []string, opts ...Option) *Manager {
	m := &Manager{
		dictionary: lo.Uniq(words),
		rng:        DefaultRand,
		trace:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NumWords returns how many dictionary words have the given length.
func (m *Manager) NumWords(length int) int {
	return lo.CountBy(m.dictionary, func(w string) bool {
		return utf8.RuneCountInString(w) == length
	})
}

// PrepForRound starts a new round with words of the given length, the given
// number of wrong guesses allowed and a fixed difficulty.
func (m *Manager) PrepForRound(length, guesses int, d Difficulty) error {
	if length <= 0 {
		return fmt.Errorf("%w: word length %d", ErrInvalidRoundSetup, length)
	}
	if guesses <= 0 {
		return fmt.Errorf("%w: guess budget %d", ErrInvalidRoundSetup, guesses)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidRoundSetup, d)
	}
	words := lo.Filter(m.dictionary, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) == length
	})
	if len(words) == 0 {
		return fmt.Errorf("%w: no words of length %d", ErrInvalidRoundSetup, length)
	}
	slices.Sort(words)

	m.prepared = true
	m.length = length
	m.guessesLeft = guesses
	m.difficulty = d
	m.candidates = words
	m.pattern = BlankPattern(length)
	m.guessed = nil
	m.guessedSet = Letters{}
	return nil
}

// MakeGuess applies one guess and returns the size of every family the guess
// split the live words into. The guess budget drops by one only when the
// adopted pattern does not show the letter. On error nothing changes.
func (m *Manager) MakeGuess(letter rune) (map[Pattern]int, error) {
	if !m.prepared {
		return nil, ErrRoundNotPrepared
	}
	if letter == Blank || !unicode.IsPrint(letter) || unicode.IsSpace(letter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	if m.guessedSet.Has(letter) {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyGuessed, letter)
	}
	if m.guessesLeft <= 0 {
		return nil, ErrNoGuessesLeft
	}

	groups := Partition(m.candidates, m.guessedSet, letter)
	ranked := Rank(groups)
	turn := len(m.guessed)
	c := choose(len(ranked), m.difficulty, turn)
	picked := ranked[c.index]
	m.traceChoice(letter, turn, ranked, c)

	// Commit.
	m.candidates = picked.Words
	m.pattern = picked.Pattern
	m.guessed = append(m.guessed, letter)
	m.guessedSet[letter] = struct{}{}
	if !picked.Pattern.Contains(letter) {
		m.guessesLeft--
	}
	return Counts(groups), nil
}

func (m *Manager) traceChoice(letter rune, turn int, ranked []Family, c choice) {
	if m.trace.GetLevel() > zerolog.DebugLevel {
		return
	}
	picked := ranked[c.index]
	if c.mercy {
		if c.index == 0 {
			m.trace.Debug().Int("turn", turn).Msg("mercy turn, but only one family available")
		} else {
			m.trace.Debug().
				Int("turn", turn).
				Int("cost", ranked[0].Size()-picked.Size()).
				Str("instead_of", ranked[0].Pattern.String()).
				Msg("picking second hardest family")
		}
	}
	m.trace.Debug().
		Str("guess", string(letter)).
		Str("pattern", picked.Pattern.String()).
		Int("family_size", picked.Size()).
		Int("families", len(ranked)).
		Msg("new pattern")
}

// SecretWord picks one live word uniformly at random. The word stays in the
// candidate set, so repeated calls may disagree.
func (m *Manager) SecretWord() (string, error) {
	if len(m.candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	return m.candidates[m.rng.Intn(len(m.candidates))], nil
}

// GuessesLeft is the number of wrong guesses the player may still make.
func (m *Manager) GuessesLeft() int { return m.guessesLeft }

// Pattern is the currently revealed pattern.
func (m *Manager) Pattern() Pattern { return m.pattern }

// NumWordsCurrent is the number of words still consistent with the guesses.
func (m *Manager) NumWordsCurrent() int { return len(m.candidates) }

// Candidates returns a sorted copy of the live words.
func (m *Manager) Candidates() []string { return slices.Clone(m.candidates) }

// Difficulty of the current round.
func (m *Manager) Difficulty() Difficulty { return m.difficulty }

// Length of the words in the current round.
func (m *Manager) Length() int { return m.length }

// Guessed returns the guessed letters in the order they were made.
func (m *Manager) Guessed() []rune { return slices.Clone(m.guessed) }

// GuessesMade renders the guessed letters sorted, e.g. "[a, c, e]".
func (m *Manager) GuessesMade() string {
	sorted := slices.Clone(m.guessed)
	slices.Sort(sorted)
	parts := lo.Map(sorted, func(r rune, _ int) string { return string(r) })
	return "[" + strings.Join(parts, ", ") + "]"
}

// AlreadyGuessed reports whether letter was guessed this round.
func (m *Manager) AlreadyGuessed(letter rune) bool { return m.guessedSet.Has(letter) }
