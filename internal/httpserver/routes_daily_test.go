package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/evilhangman/internal/daily"
	"github.com/robalobadob/evilhangman/internal/game"
)

func dailyNew(t *testing.T, s *Server, cookie *http.Cookie) (dailyNewRes, *http.Cookie) {
	t.Helper()
	req := newRequest(t, http.MethodPost, "/daily/new", "", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == anonCookieName {
			cookie = c
		}
	}
	return decode[dailyNewRes](t, rec), cookie
}

func TestDailyRoundIsSharedAndReused(t *testing.T) {
	s := newTestServer(t, "bat", "bet", "bit", "ox")
	want := daily.ForDate(time.Now(), "salt", s.daily.lengths)

	first, cookie := dailyNew(t, s, nil)
	require.NotNil(t, cookie)
	assert.Equal(t, want, first.Round)
	assert.Equal(t, want.Length, first.Length)
	assert.Equal(t, want.Difficulty, first.Difficulty)

	again, _ := dailyNew(t, s, cookie)
	assert.Equal(t, first.GameID, again.GameID)

	someoneElse, _ := dailyNew(t, s, nil)
	assert.NotEqual(t, first.GameID, someoneElse.GameID)
	assert.Equal(t, first.Round, someoneElse.Round)
}

func TestDailyGuess(t *testing.T) {
	s := newTestServer(t, "bat", "bet", "bit", "ox")
	g, cookie := dailyNew(t, s, nil)

	req := newRequest(t, http.MethodPost, "/daily/guess", g.Token, guessReq{GameID: g.GameID, Letter: "q"})
	req.AddCookie(cookie)
	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[game.Result](t, rec)
	assert.Equal(t, 4, res.GuessesLeft)

	// A regular game cannot be played through the daily route.
	other := startGame(t, s, nil)
	req = newRequest(t, http.MethodPost, "/daily/guess", other.Token, guessReq{GameID: other.GameID, Letter: "q"})
	req.AddCookie(cookie)
	rec = serve(s, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
