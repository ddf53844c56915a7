package game

import "fmt"

type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// World is the square playing field. It holds no state besides its size.
type World struct {
	Size int
}

func DefaultWorld() World {
	return World{Size: GridSize}
}

func (w World) IsOutOfBounds(p Position) bool {
	return p.X < 0 || p.X >= w.Size || p.Y < 0 || p.Y >= w.Size
}

// Cells lists every cell of the world, x outer and y inner.
func (w World) Cells() []Position {
	cells := make([]Position, 0, w.Size*w.Size)
	for x := 0; x < w.Size; x++ {
		for y := 0; y < w.Size; y++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// FreeCells returns the cells not covered by any of the occupied positions.
func (w World) FreeCells(occupied ...[]Position) []Position {
	taken := make(map[Position]struct{})
	for _, group := range occupied {
		for _, p := range group {
			taken[p] = struct{}{}
		}
	}

	free := make([]Position, 0, w.Size*w.Size)
	for _, cell := range w.Cells() {
		if _, ok := taken[cell]; ok {
			continue
		}
		free = append(free, cell)
	}
	return free
}

// IsOutOfBounds checks p against the default GridSize world.
func IsOutOfBounds(p Position) bool {
	return DefaultWorld().IsOutOfBounds(p)
}
