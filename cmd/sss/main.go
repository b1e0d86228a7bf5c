package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	command := newRootCmd()
	if err := command.Execute(); err != nil {
		log.Error().Err(err).Msg("sss")
		os.Exit(1)
	}
}
