package hangman

import "lukechampine.com/frand"

// Rand supplies uniform integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// RandFunc adapts a function to Rand.
type RandFunc func(n int) int

func (f RandFunc) Intn(n int) int { return f(n) }

// DefaultRand draws from frand's CSPRNG.
var DefaultRand Rand = RandFunc(frand.Intn)
