package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestRandomizeFruits(t *testing.T) {
	world := World{Size: GridSize}

	fruits := RandomizeFruits(newTestRand(7), world, 50)

	require.Len(t, fruits, 50)
	for _, fruit := range fruits {
		require.False(t, world.IsOutOfBounds(fruit.Position), fruit.Position.String())
	}

	// Same seed, same placement.
	require.Equal(t, fruits, RandomizeFruits(newTestRand(7), world, 50))
}

func TestFruitBasket_Randomize(t *testing.T) {
	basket := NewFruitBasket(newTestRand(1), World{Size: 5})

	basket.Randomize(3)
	first := basket.Fruits()
	basket.Randomize(2)

	require.Len(t, first, 3)
	require.Equal(t, 2, basket.Len())
	for _, fruit := range basket.Fruits() {
		require.Greater(t, fruit.ID, first[2].ID)
	}
}

func TestFruitBasket_Remove(t *testing.T) {
	t.Run("removes only the named fruit", func(t *testing.T) {
		// Given: two fruit stacked on the same cell
		basket := NewFruitBasket(newTestRand(1), World{Size: 5})
		basket.fruits = []Fruit{
			{ID: 1, Position: Position{X: 2, Y: 2}},
			{ID: 2, Position: Position{X: 2, Y: 2}},
			{ID: 3, Position: Position{X: 4, Y: 0}},
		}

		// When: one of them is removed
		removed := basket.Remove(2)

		// Then: the other one on that cell survives
		require.True(t, removed)
		require.Equal(t, []Fruit{
			{ID: 1, Position: Position{X: 2, Y: 2}},
			{ID: 3, Position: Position{X: 4, Y: 0}},
		}, basket.Fruits())
	})

	t.Run("unknown id", func(t *testing.T) {
		basket := NewFruitBasket(newTestRand(1), World{Size: 5})
		basket.Randomize(1)

		require.False(t, basket.Remove(100))
		require.Equal(t, 1, basket.Len())
	})
}

func TestFruitBasket_SpawnReplacement(t *testing.T) {
	t.Run("never lands on snake or fruit", func(t *testing.T) {
		world := World{Size: 4}
		snake := &Snake{
			Segments: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
			Head:     Position{X: 0, Y: 0},
		}

		for seed := uint64(0); seed < 50; seed++ {
			basket := NewFruitBasket(newTestRand(seed), world)
			basket.fruits = []Fruit{{ID: 1, Position: Position{X: 0, Y: 1}}}
			basket.nextID = 2

			fruit, ok := basket.SpawnReplacement(snake)

			require.True(t, ok)
			require.Equal(t, 2, fruit.ID)
			require.NotEqual(t, 0, fruit.Y)
			require.NotEqual(t, Position{X: 0, Y: 1}, fruit.Position)
			require.False(t, world.IsOutOfBounds(fruit.Position))
			require.Equal(t, 2, basket.Len())
		}
	})

	t.Run("picks the single free cell", func(t *testing.T) {
		world := World{Size: 2}
		snake := &Snake{
			Segments: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}},
			Head:     Position{X: 0, Y: 0},
		}
		basket := NewFruitBasket(newTestRand(3), world)
		basket.fruits = []Fruit{{ID: 1, Position: Position{X: 1, Y: 1}}}

		fruit, ok := basket.SpawnReplacement(snake)

		require.True(t, ok)
		require.Equal(t, Position{X: 0, Y: 1}, fruit.Position)
	})

	t.Run("full board skips the spawn", func(t *testing.T) {
		// Given: snake and fruit cover the whole board
		world := World{Size: 2}
		snake := &Snake{
			Segments: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			Head:     Position{X: 0, Y: 0},
		}
		basket := NewFruitBasket(newTestRand(3), world)
		basket.fruits = []Fruit{{ID: 1, Position: Position{X: 0, Y: 1}}}

		// When: a replacement is requested
		_, ok := basket.SpawnReplacement(snake)

		// Then: nothing is placed
		require.False(t, ok)
		require.Equal(t, 1, basket.Len())
	})
}
