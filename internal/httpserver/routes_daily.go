// internal/httpserver/routes_daily.go
//
// HTTP routes for the "round of the day".
// Exposes two endpoints under /daily:
//   - POST /daily/new    → start today's round (creates or reuses session)
//   - POST /daily/guess  → submit a letter for today's round
//
// Every player gets the same word length and difficulty on a given date
// (see package daily). A player is identified by an anonymous cookie and
// plays one round per date; sessions are held in memory.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/robalobadob/evilhangman/internal/daily"
	"github.com/robalobadob/evilhangman/internal/game"
)

// minDailyWords is the smallest per-length word count offered as a daily round.
const minDailyWords = 20

const anonCookieName = "hangman_anon"

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	salt     string
	lengths  []int
	mu       sync.Mutex        // guards date and sessions
	date     string            // date the sessions belong to
	sessions map[string]string // game IDs keyed by playerID|date
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	lengths := lo.Filter(s.dict.Lengths(), func(n int, _ int) bool {
		return s.dict.Count(n) >= minDailyWords
	})
	if len(lengths) == 0 {
		lengths = s.dict.Lengths()
	}
	s.daily = &dailyServer{
		srv:      s,
		salt:     s.cfg.DailySalt,
		lengths:  lengths,
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.daily.handleNew)
		r.With(s.requireSession(bodyGameID)).Post("/guess", s.daily.handleGuess)
	})
}

// today returns today's shared round setup.
func (d *dailyServer) today() daily.Round {
	return daily.ForDate(time.Now(), d.salt, d.lengths)
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Round     daily.Round `json:"round"`
	GameID    string      `json:"gameId"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	game.View
}

// handleNew creates or reuses today's session for the calling player.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	round := d.today()
	key := ensureAnonID(w, r) + "|" + round.Date

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.date != round.Date {
		d.date = round.Date
		d.sessions = make(map[string]string)
	}
	if id, ok := d.sessions[key]; ok {
		if g, err := d.srv.store.Get(r.Context(), id); err == nil {
			tok, exp, err := d.srv.signSession(g.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			_ = json.NewEncoder(w).Encode(dailyNewRes{Round: round, GameID: g.ID, Token: tok, ExpiresAt: exp, View: g.View()})
			return
		}
	}

	g, tok, exp, ok := d.srv.startGame(w, r, game.Settings{
		Length:     round.Length,
		Guesses:    d.srv.cfg.DefaultGuesses,
		Difficulty: round.Difficulty,
		Trace:      d.srv.cfg.Trace,
	})
	if !ok {
		return
	}
	d.sessions[key] = g.ID
	_ = json.NewEncoder(w).Encode(dailyNewRes{Round: round, GameID: g.ID, Token: tok, ExpiresAt: exp, View: g.View()})
}

// handleGuess applies a guess, but only to the caller's session for today.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	key := ensureAnonID(w, r) + "|" + d.today().Date
	d.mu.Lock()
	id, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || id != sessionGame(r).ID {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	d.srv.handleGuess(w, r)
}

// ensureAnonID returns an existing anon cookie or sets a new one.
func ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
}
