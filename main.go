package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nlowes/wordhint/internal/httpserver"
	"github.com/nlowes/wordhint/internal/shell"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive shell")
	flag.Parse()

	if *serve || strings.EqualFold(os.Getenv("MODE"), "serve") {
		srv := httpserver.New()
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Msg("starting wordhint api")
		if err := srv.Start(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	if err := shell.New(os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal().Err(err).Msg("shell exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
