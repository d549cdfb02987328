package hangman

import "errors"

var (
	// ErrAlreadyGuessed is returned by MakeGuess for a repeated letter.
	ErrAlreadyGuessed = errors.New("letter already guessed")
	// ErrEmptyCandidateSet is returned by SecretWord when no words remain.
	ErrEmptyCandidateSet = errors.New("no candidate words remain")
	// ErrInvalidRoundSetup is returned by PrepForRound for an unplayable round.
	ErrInvalidRoundSetup = errors.New("invalid round setup")
	// ErrRoundNotPrepared is returned when a round operation runs before PrepForRound.
	ErrRoundNotPrepared = errors.New("round not prepared")
	// ErrNoGuessesLeft is returned by MakeGuess once the budget is spent.
	ErrNoGuessesLeft = errors.New("no guesses left")
	// ErrInvalidLetter is returned by MakeGuess for the blank rune, whitespace
	// or a non-printable rune.
	ErrInvalidLetter = errors.New("invalid letter")
)
