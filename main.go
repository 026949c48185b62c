// gobang is a terminal five-in-a-row game for two players sharing a keyboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gobang/config"
	"gobang/engine"
	"gobang/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize = flag.Int("boardsize", 0, fmt.Sprintf("Board size (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
	flagVersion   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gobang %s\n", Version)
		return
	}

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagBoardSize != 0 {
		cfg.Board.Size = *flagBoardSize
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := initLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %s\n", err)
		os.Exit(1)
	}
	defer closeLog.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error("terminal failure", "error", err)
		fmt.Fprintln(os.Stderr, err)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	term, err := ui.NewTerminal(nil, cfg)
	if err != nil {
		return err
	}
	if err := term.Start(); err != nil {
		return err
	}
	defer term.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = cfg.Board.Size
	gameCfg.PollInterval = cfg.Board.PollInterval()

	session := engine.NewSession(gameCfg, logger)
	return session.Run(ctx, term, term)
}

// initLogger opens the log file; the terminal itself belongs to the game.
func initLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
