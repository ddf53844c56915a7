package desktop

import (
	"github.com/Mshel/falke-snake/internal/game"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var directionKeys = []struct {
	key       glfw.Key
	direction game.Direction
}{
	{glfw.KeyUp, game.DirectionUp},
	{glfw.KeyDown, game.DirectionDown},
	{glfw.KeyLeft, game.DirectionLeft},
	{glfw.KeyRight, game.DirectionRight},
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

// JustPressed is true only on the frame a key goes down.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Directions returns the turn requests pressed since the previous frame.
func (in *Input) Directions(window *glfw.Window) []game.Direction {
	var pressed []game.Direction
	for _, dk := range directionKeys {
		if in.JustPressed(window, dk.key) {
			pressed = append(pressed, dk.direction)
		}
	}
	return pressed
}
