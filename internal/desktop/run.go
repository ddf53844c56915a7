package desktop

import (
	"fmt"

	"github.com/Mshel/falke-snake/internal/game"
	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// maxFrameTime caps how much simulated time one slow frame may catch up on.
const maxFrameTime = 0.25

// Run opens the game window and drives gm from the calling goroutine, which must be
// locked to the main OS thread. It returns nil when the window is closed and the
// collision error when the snake dies.
func Run(gm *game.GameManager, logger *log.Logger) error {
	window, err := initWindow(game.WindowTitle, game.WindowPixelSize())
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer(game.WindowPixelSize())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	tick := gm.TickDuration().Seconds()
	logger.Info("Window opened", "title", game.WindowTitle, "seed", gm.Seed(), "ups", game.TicksPerSecond)

	var accumulated float64
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		for _, dir := range input.Directions(window) {
			gm.ProcessInput(dir)
		}
		if input.JustPressed(window, glfw.KeySpace) {
			logger.Debug("Space")
		}

		now := glfw.GetTime()
		accumulated += min(now-last, maxFrameTime)
		last = now
		for accumulated >= tick {
			accumulated -= tick
			if err := gm.ProcessTick(); err != nil {
				return err
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.DrawFrame(gm.Snapshot(), fbW, fbH)
		window.SwapBuffers()
	}

	logger.Info("Window closed", "tick", gm.TickCount)
	return nil
}
