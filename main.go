package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/evilhangman/internal/config"
	"github.com/robalobadob/evilhangman/internal/httpserver"
	"github.com/robalobadob/evilhangman/internal/store"
	"github.com/robalobadob/evilhangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	if cfg.WordsDB != "" {
		if dict, err = loadDictionaryDB(ctx, cfg.WordsDB, dict); err != nil {
			log.Fatal().Err(err).Str("db", cfg.WordsDB).Msg("failed to load dictionary from db")
		}
	}
	log.Info().Int("words", dict.Len()).Ints("lengths", dict.Lengths()).Msg("dictionary loaded")

	mem := store.NewMemoryStore()
	go store.RunSweeper(ctx, mem, 5*time.Minute, cfg.SessionTTL)

	srv := httpserver.New(mem, dict, cfg, nil)
	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
