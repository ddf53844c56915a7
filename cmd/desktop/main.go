package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/Mshel/falke-snake/internal/config"
	"github.com/Mshel/falke-snake/internal/desktop"
	"github.com/Mshel/falke-snake/internal/game"
	"github.com/charmbracelet/log"
)

func init() {
	// GLFW and the GL context have to stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	conf, err := config.Load(os.Getenv("SNAKE_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log.SetLevel(conf.Level())

	gameManager := game.NewGameManager(conf.GameOptions(log.Default())...)

	if err := desktop.Run(gameManager, log.Default()); err != nil {
		if errors.Is(err, game.ErrCollision) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal("Desktop game failed", "error", err)
	}
}
