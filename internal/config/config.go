// internal/config/config.go
//
// Environment-driven configuration. A .env file in the working directory is
// loaded first (development convenience); real environment variables win.
//
// Environment variables:
//   PORT=5175                     HTTP listen port
//   LOG_LEVEL=info                zerolog level
//   WORDS_FILE=/path/words.txt    dictionary file ("" → embedded list)
//   WORDS_DB=./data/words.db      SQLite dictionary ("" → not used)
//   JWT_SECRET=...                session token signing key
//   SESSION_HOURS=24              idle session lifetime
//   CLIENT_ORIGIN=http://...      CORS origin
//   DAILY_SALT=...                salt for the round of the day
//   DEFAULT_GUESSES=8             wrong guesses allowed when unspecified
//   DEFAULT_DIFFICULTY=hard       difficulty when unspecified
//   HANGMAN_TRACE=false           per-guess diagnostics at debug level

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/robalobadob/evilhangman/internal/hangman"
)

// Config is the server configuration.
type Config struct {
	Port              string
	LogLevel          string
	WordsFile         string
	WordsDB           string
	JWTSecret         string
	SessionTTL        time.Duration
	ClientOrigin      string
	DailySalt         string
	DefaultGuesses    int
	DefaultDifficulty hangman.Difficulty
	Trace             bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	c := &Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		WordsDB:      os.Getenv("WORDS_DB"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
	}

	hours, err := envInt("SESSION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if hours <= 0 {
		return nil, fmt.Errorf("config: SESSION_HOURS must be positive, got %d", hours)
	}
	c.SessionTTL = time.Duration(hours) * time.Hour

	if c.DefaultGuesses, err = envInt("DEFAULT_GUESSES", 8); err != nil {
		return nil, err
	}
	if c.DefaultGuesses <= 0 {
		return nil, fmt.Errorf("config: DEFAULT_GUESSES must be positive, got %d", c.DefaultGuesses)
	}
	if c.DefaultDifficulty, err = hangman.ParseDifficulty(getEnv("DEFAULT_DIFFICULTY", "hard")); err != nil {
		return nil, fmt.Errorf("config: DEFAULT_DIFFICULTY: %w", err)
	}
	if v := os.Getenv("HANGMAN_TRACE"); v != "" {
		if c.Trace, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("config: HANGMAN_TRACE: %w", err)
		}
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}
