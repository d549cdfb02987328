// internal/httpserver/token.go
//
// Session tokens. Creating a game hands back an HS256 JWT whose subject is
// the game ID; requests on that game must carry it as a bearer token, so a
// round is only ever driven by the caller that started it.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/evilhangman/internal/game"
)

const tokenIssuer = "evil-hangman"

// signSession creates a token for gameID expiring after the session TTL.
func (s *Server) signSession(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   gameID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseSession validates a token and returns the game ID it grants.
func (s *Server) parseSession(tok string) (string, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ---------------------------- session middleware ---------------------------

type (
	ctxGameKey struct{}
	ctxBodyKey struct{}
)

// gameIDFunc pulls the target game ID out of a request, possibly consuming
// the body; the returned request replaces the original.
type gameIDFunc func(r *http.Request) (string, *http.Request, error)

// bodyGameID reads a guessReq body and keeps it in the request context.
func bodyGameID(r *http.Request) (string, *http.Request, error) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", r, err
	}
	return req.GameID, r.WithContext(context.WithValue(r.Context(), ctxBodyKey{}, req)), nil
}

// urlGameID reads the {id} route parameter.
func urlGameID(r *http.Request) (string, *http.Request, error) {
	return chi.URLParam(r, "id"), r, nil
}

// requireSession enforces a valid session token for the targeted game and
// injects the *game.Game into the request context.
func (s *Server) requireSession(extract gameIDFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearer(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			granted, err := s.parseSession(tok)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			id, r, err := extract(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, "bad_json")
				return
			}
			if id != granted {
				writeError(w, http.StatusForbidden, "token_mismatch")
				return
			}
			g, err := s.store.Get(r.Context(), id)
			if err != nil {
				writeError(w, http.StatusNotFound, "not_found")
				return
			}
			ctx := context.WithValue(r.Context(), ctxGameKey{}, g)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionGame returns the game injected by requireSession.
func sessionGame(r *http.Request) *game.Game {
	g, _ := r.Context().Value(ctxGameKey{}).(*game.Game)
	return g
}

// sessionBody returns the guess body read by bodyGameID.
func sessionBody(r *http.Request) guessReq {
	req, _ := r.Context().Value(ctxBodyKey{}).(guessReq)
	return req
}
