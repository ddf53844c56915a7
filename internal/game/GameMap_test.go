package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorld_IsOutOfBounds(t *testing.T) {
	world := World{Size: 20}

	require.True(t, world.IsOutOfBounds(Position{X: -1, Y: 5}))
	require.True(t, world.IsOutOfBounds(Position{X: 20, Y: 5}))
	require.True(t, world.IsOutOfBounds(Position{X: 5, Y: -1}))
	require.True(t, world.IsOutOfBounds(Position{X: 5, Y: 20}))
	require.False(t, world.IsOutOfBounds(Position{X: 0, Y: 0}))
	require.False(t, world.IsOutOfBounds(Position{X: 19, Y: 19}))

	require.True(t, IsOutOfBounds(Position{X: GridSize, Y: 0}))
	require.False(t, IsOutOfBounds(Position{X: GridSize - 1, Y: 0}))
}

func TestWorld_Cells(t *testing.T) {
	cells := World{Size: 3}.Cells()

	require.Len(t, cells, 9)
	require.Equal(t, Position{X: 0, Y: 0}, cells[0])
	require.Equal(t, Position{X: 0, Y: 1}, cells[1])
	require.Equal(t, Position{X: 2, Y: 2}, cells[8])
}

func TestWorld_FreeCells(t *testing.T) {
	world := World{Size: 2}

	free := world.FreeCells(
		[]Position{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]Position{{X: 0, Y: 1}},
	)
	require.Equal(t, []Position{{X: 1, Y: 1}}, free)

	require.Empty(t, world.FreeCells(world.Cells()))
}

func TestCellSquare(t *testing.T) {
	x, y, side := CellSquare(Position{X: 2, Y: 3})

	require.Equal(t, float32(2*CellPixelSize), x)
	require.Equal(t, float32(3*CellPixelSize), y)
	require.Equal(t, float32(CellPixelSize-1), side)
	require.Equal(t, 600, WindowPixelSize())
}

func TestColor_Hex(t *testing.T) {
	require.Equal(t, "#1a0d1a", BackgroundColor.Hex())
	require.Len(t, SnakeColor.Hex(), 7)
	require.Equal(t, "#cc331a", FruitColor.Hex())
}
