package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Mshel/falke-snake/internal/config"
	"github.com/Mshel/falke-snake/internal/game"
	"github.com/Mshel/falke-snake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load(os.Getenv("SNAKE_CONFIG"))
	if err != nil {
		return err
	}

	// The terminal belongs to the game; logs only go to a file when one is configured.
	log.SetOutput(io.Discard)
	if conf.LogFile != "" {
		logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.SetLevel(conf.Level())

	gameManager := game.NewGameManager(conf.GameOptions(log.Default())...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- gameManager.StartGameLoop(ctx)
	}()

	p := tea.NewProgram(ui.NewControllerModel(gameManager, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	cancel()
	if err := <-loopDone; errors.Is(err, game.ErrCollision) {
		return err
	}
	return nil
}
