// internal/httpserver/server.go
//
// HTTP server wiring for the evil hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET/DELETE /game/{id}.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Every session owns its own round; the store only hands out pointers.
//   - A new game returns a session token (token.go); every later call on that
//     game must present it as "Authorization: Bearer <token>".

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/evilhangman/internal/config"
	"github.com/robalobadob/evilhangman/internal/game"
	"github.com/robalobadob/evilhangman/internal/hangman"
	"github.com/robalobadob/evilhangman/internal/store"
	"github.com/robalobadob/evilhangman/internal/words"
)

// Server bundles router, session store, dictionary and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
	cfg   *config.Config
	rng   hangman.Rand     // default word lengths and secret words
	opts  []hangman.Option // passed to every new round
	daily *dailyServer
}

// New constructs a Server, installs middleware, and registers routes.
// A nil rng selects hangman.DefaultRand.
func New(st store.Store, dict *words.Dictionary, cfg *config.Config, rng hangman.Rand, opts ...hangman.Option) *Server {
	if rng == nil {
		rng = hangman.DefaultRand
	}
	opts = append([]hangman.Option{hangman.WithRand(rng)}, opts...)
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, cfg: cfg, rng: rng, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"evil-hangman","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /daily/new","POST /daily/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"total": s.dict.Len(), "byLength": s.dict.Stats()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireSession(bodyGameID)).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireSession(urlGameID)).Get("/game/{id}", s.handleGetGame)
	s.r.With(s.requireSession(urlGameID)).Delete("/game/{id}", s.handleDeleteGame)

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// guessError maps round errors onto HTTP status codes.
func guessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hangman.ErrAlreadyGuessed):
		writeError(w, http.StatusConflict, "already_guessed")
	case errors.Is(err, game.ErrFinished), errors.Is(err, hangman.ErrNoGuessesLeft):
		writeError(w, http.StatusConflict, "game_finished")
	case errors.Is(err, game.ErrInvalidGuess), errors.Is(err, hangman.ErrInvalidLetter):
		writeError(w, http.StatusBadRequest, "invalid_guess")
	default:
		log.Error().Err(err).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
	}
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new. Zero values pick defaults.
type newGameReq struct {
	Length     int                 `json:"length"`
	Guesses    int                 `json:"guesses"`
	Difficulty *hangman.Difficulty `json:"difficulty"`
}
type newGameRes struct {
	GameID    string    `json:"gameId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	game.View
}

// settings fills unset fields of req from configuration. A missing length
// picks one of the available lengths at random.
func (s *Server) settings(req newGameReq) game.Settings {
	st := game.Settings{
		Length:     req.Length,
		Guesses:    req.Guesses,
		Difficulty: s.cfg.DefaultDifficulty,
		Trace:      s.cfg.Trace,
	}
	if st.Length == 0 {
		ls := s.dict.Lengths()
		st.Length = ls[s.rng.Intn(len(ls))]
	}
	if st.Guesses == 0 {
		st.Guesses = s.cfg.DefaultGuesses
	}
	if req.Difficulty != nil {
		st.Difficulty = *req.Difficulty
	}
	return st
}

// startGame builds, stores and signs a new session.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, st game.Settings) (*game.Game, string, time.Time, bool) {
	g, err := game.New(s.dict.Words(), st, s.opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, "", time.Time{}, false
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return nil, "", time.Time{}, false
	}
	tok, exp, err := s.signSession(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return nil, "", time.Time{}, false
	}
	log.Info().
		Str("gameId", g.ID).
		Int("length", st.Length).
		Int("guesses", st.Guesses).
		Stringer("difficulty", st.Difficulty).
		Msg("new game")
	return g, tok, exp, true
}

// handleNewGame creates a new in-memory session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, tok, exp, ok := s.startGame(w, r, s.settings(req))
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: tok, ExpiresAt: exp, View: g.View()})
}

// guessReq payload for POST /game/guess; the response is game.Result.
type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

// handleGuess applies a guess to the session named by the token.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	g := sessionGame(r)
	req := sessionBody(r)
	res, err := g.ApplyGuess(req.Letter)
	if err != nil {
		guessError(w, err)
		return
	}
	if res.State != game.StatePlaying {
		log.Info().Str("gameId", g.ID).Str("state", string(res.State)).Msg("game over")
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(sessionGame(r).View())
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	g := sessionGame(r)
	if err := s.store.Delete(r.Context(), g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
