package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saeidalz13/battleship-engine/db/store"
	"github.com/saeidalz13/battleship-engine/internal/config"
	"github.com/saeidalz13/battleship-engine/internal/logging"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		panic(err)
	}
	if err := config.Load("."); err != nil {
		panic(err)
	}

	logFile, err := logging.OpenLogFile(config.GetString("logFile"))
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	var fileOut io.Writer
	if logFile != nil {
		defer logFile.Close()
		fileOut = logFile
	}
	log := logging.New(os.Stderr, fileOut, config.GetString("logLevel"))

	backend, err := store.NewBackend(config.GetStorageConfig(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer backend.Close()

	cli := NewCli(backend, log, os.Stdin, os.Stdout,
		WithBoardSize(config.GetInt("boardSize")),
		WithAIConfig(config.GetAIConfig()),
		WithBenchGames(config.GetInt("bench.games")),
	)
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		backend.Close()
		os.Exit(1)
	}
}
