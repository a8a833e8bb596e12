package main

import (
	"fmt"
	"os"

	"github.com/arraboard/arraboard/internal/adapter"
	"github.com/arraboard/arraboard/internal/board"
	"github.com/arraboard/arraboard/internal/config"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/tui"
	"github.com/arraboard/arraboard/internal/utils"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	// stdout belongs to the terminal UI, logs go to a file
	log := logger.NewFileLogger("client", cfg.LogFile)
	ids := utils.NewIDGenerator()

	var (
		b             *board.Board
		serverAdapter *adapter.ServerAdapter
	)
	switch cfg.Mode {
	case config.ModeRemote:
		serverAdapter = adapter.NewServerAdapter(cfg.ServerAddress, cfg.RequestTimeout, log)
		b = board.NewRemoteBoard(serverAdapter, ids, log)
		log.Info().Str("server", cfg.ServerAddress).Msg("remote mode")
	default:
		b = board.NewLocalBoard(cfg.DataDir, ids, log)
		log.Info().Str("dir", cfg.DataDir).Msg("local mode")
	}

	if err := tui.Run(b, serverAdapter, log); err != nil {
		log.Error().Err(err).Msg("terminal ui failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
