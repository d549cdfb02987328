package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/robalobadob/evilhangman/internal/game"
	"github.com/robalobadob/evilhangman/internal/hangman"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New([]string{"bat", "bet"}, game.Settings{Length: 3, Guesses: 3, Difficulty: hangman.Hard})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSaveGetDelete(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	st := NewMemoryStore()
	g := newGame(t)

	_, err := st.Get(ctx, g.ID)
	is.True(errors.Is(err, ErrNotFound))

	is.NoErr(st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	is.NoErr(err)
	is.Equal(got, g)

	is.NoErr(st.Delete(ctx, g.ID))
	_, err = st.Get(ctx, g.ID)
	is.True(errors.Is(err, ErrNotFound))
	is.NoErr(st.Delete(ctx, "nope"))
}

func TestSweep(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	st := NewMemoryStore()
	old, fresh := newGame(t), newGame(t)
	is.NoErr(st.Save(ctx, old))

	cutoff := time.Now()
	time.Sleep(5 * time.Millisecond)
	is.NoErr(st.Save(ctx, fresh))
	_, err := fresh.ApplyGuess("b") // touches lastSeen
	is.NoErr(err)

	n, err := st.Sweep(ctx, cutoff.Add(time.Millisecond))
	is.NoErr(err)
	is.Equal(n, 1)
	_, err = st.Get(ctx, old.ID)
	is.True(errors.Is(err, ErrNotFound))
	_, err = st.Get(ctx, fresh.ID)
	is.NoErr(err)
}

func TestRunSweeperStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, NewMemoryStore(), time.Millisecond, time.Hour)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
